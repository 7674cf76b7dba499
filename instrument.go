package motif

import (
	"fmt"
	"strings"
	"unicode"
)

// InstrumentKind tells which of the three families an InstrumentName
// belongs to.
type InstrumentKind int

const (
	GeneralMIDI InstrumentKind = iota
	PercussionKit
	CustomInstrument
)

// InstrumentName identifies the instrument a note is played on: one of the
// 128 General MIDI programs, the percussion kit, or a custom instrument known
// only by its name. InstrumentName values are comparable and can be used as
// map keys.
type InstrumentName struct {
	Kind    InstrumentKind
	Program uint8 // General MIDI program, 0 to 127
	Custom  string
}

// Program returns the General MIDI instrument with the given program number.
func Program(p uint8) InstrumentName {
	return InstrumentName{Kind: GeneralMIDI, Program: p & 0x7f}
}

// Percussion marks the pitches of the notes as percussion sounds.
var Percussion = InstrumentName{Kind: PercussionKit}

func Custom(name string) InstrumentName {
	return InstrumentName{Kind: CustomInstrument, Custom: name}
}

// Less orders General MIDI programs by program number, then the percussion
// kit, then custom instruments by name.
func (n InstrumentName) Less(o InstrumentName) bool {
	if n.Kind != o.Kind {
		return n.Kind < o.Kind
	}
	switch n.Kind {
	case GeneralMIDI:
		return n.Program < o.Program
	case CustomInstrument:
		return n.Custom < o.Custom
	}
	return false
}

func (n InstrumentName) String() string {
	switch n.Kind {
	case PercussionKit:
		return "Percussion"
	case CustomInstrument:
		return n.Custom
	}
	return gmNames[n.Program&0x7f]
}

// MarshalText writes the name in the form ParseInstrument reads back.
func (n InstrumentName) MarshalText() ([]byte, error) {
	if n.Kind == CustomInstrument {
		return []byte("custom:" + n.Custom), nil
	}
	return []byte(n.String()), nil
}

func (n *InstrumentName) UnmarshalText(text []byte) error {
	v, err := ParseInstrument(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

// ParseInstrument resolves a General MIDI name ("Acoustic Grand Piano",
// "acoustic-grand-piano"), "percussion" or a "custom:" prefixed name.
func ParseInstrument(s string) (InstrumentName, error) {
	if name, ok := strings.CutPrefix(s, "custom:"); ok {
		return Custom(name), nil
	}
	key := normalizeName(s)
	if key == "percussion" || key == "drums" {
		return Percussion, nil
	}
	for i, n := range gmNames {
		if normalizeName(n) == key {
			return Program(uint8(i)), nil
		}
	}
	return InstrumentName{}, fmt.Errorf("unknown instrument %q", s)
}

// GMInstruments returns every General MIDI program in program order.
func GMInstruments() []InstrumentName {
	ret := make([]InstrumentName, len(gmNames))
	for i := range gmNames {
		ret[i] = Program(uint8(i))
	}
	return ret
}

const (
	AcousticGrandPiano uint8 = iota
	BrightAcousticPiano
	ElectricGrandPiano
	HonkyTonkPiano
	RhodesPiano
	ChorusedPiano
	Harpsichord
	Clavinet
	Celesta
	Glockenspiel
	MusicBox
	Vibraphone
	Marimba
	Xylophone
	TubularBells
	Dulcimer
	HammondOrgan
	PercussiveOrgan
	RockOrgan
	ChurchOrgan
	ReedOrgan
	Accordion
	Harmonica
	TangoAccordion
	AcousticGuitarNylon
	AcousticGuitarSteel
	ElectricGuitarJazz
	ElectricGuitarClean
	ElectricGuitarMuted
	OverdrivenGuitar
	DistortionGuitar
	GuitarHarmonics
	AcousticBass
	ElectricBassFingered
	ElectricBassPicked
	FretlessBass
	SlapBass1
	SlapBass2
	SynthBass1
	SynthBass2
	Violin
	Viola
	Cello
	Contrabass
	TremoloStrings
	PizzicatoStrings
	OrchestralHarp
	Timpani
	StringEnsemble1
	StringEnsemble2
	SynthStrings1
	SynthStrings2
	ChoirAahs
	VoiceOohs
	SynthVoice
	OrchestraHit
	Trumpet
	Trombone
	Tuba
	MutedTrumpet
	FrenchHorn
	BrassSection
	SynthBrass1
	SynthBrass2
	SopranoSax
	AltoSax
	TenorSax
	BaritoneSax
	Oboe
	EnglishHorn
	Bassoon
	Clarinet
	Piccolo
	Flute
	Recorder
	PanFlute
	BlownBottle
	Shakuhachi
	Whistle
	Ocarina
	Lead1Square
	Lead2Sawtooth
	Lead3Calliope
	Lead4Chiff
	Lead5Charang
	Lead6Voice
	Lead7Fifths
	Lead8BassLead
	Pad1NewAge
	Pad2Warm
	Pad3Polysynth
	Pad4Choir
	Pad5Bowed
	Pad6Metallic
	Pad7Halo
	Pad8Sweep
	FX1Train
	FX2Soundtrack
	FX3Crystal
	FX4Atmosphere
	FX5Brightness
	FX6Goblins
	FX7Echoes
	FX8SciFi
	Sitar
	Banjo
	Shamisen
	Koto
	Kalimba
	Bagpipe
	Fiddle
	Shanai
	TinkleBell
	Agogo
	SteelDrums
	Woodblock
	TaikoDrum
	MelodicDrum
	SynthDrum
	ReverseCymbal
	GuitarFretNoise
	BreathNoise
	Seashore
	BirdTweet
	TelephoneRing
	Helicopter
	Applause
	Gunshot
)

var gmNames = [128]string{
	"Acoustic Grand Piano", "Bright Acoustic Piano", "Electric Grand Piano", "Honky Tonk Piano",
	"Rhodes Piano", "Chorused Piano", "Harpsichord", "Clavinet",
	"Celesta", "Glockenspiel", "Music Box", "Vibraphone",
	"Marimba", "Xylophone", "Tubular Bells", "Dulcimer",
	"Hammond Organ", "Percussive Organ", "Rock Organ", "Church Organ",
	"Reed Organ", "Accordion", "Harmonica", "Tango Accordion",
	"Acoustic Guitar Nylon", "Acoustic Guitar Steel", "Electric Guitar Jazz", "Electric Guitar Clean",
	"Electric Guitar Muted", "Overdriven Guitar", "Distortion Guitar", "Guitar Harmonics",
	"Acoustic Bass", "Electric Bass Fingered", "Electric Bass Picked", "Fretless Bass",
	"Slap Bass 1", "Slap Bass 2", "Synth Bass 1", "Synth Bass 2",
	"Violin", "Viola", "Cello", "Contrabass",
	"Tremolo Strings", "Pizzicato Strings", "Orchestral Harp", "Timpani",
	"String Ensemble 1", "String Ensemble 2", "Synth Strings 1", "Synth Strings 2",
	"Choir Aahs", "Voice Oohs", "Synth Voice", "Orchestra Hit",
	"Trumpet", "Trombone", "Tuba", "Muted Trumpet",
	"French Horn", "Brass Section", "Synth Brass 1", "Synth Brass 2",
	"Soprano Sax", "Alto Sax", "Tenor Sax", "Baritone Sax",
	"Oboe", "English Horn", "Bassoon", "Clarinet",
	"Piccolo", "Flute", "Recorder", "Pan Flute",
	"Blown Bottle", "Shakuhachi", "Whistle", "Ocarina",
	"Lead 1 Square", "Lead 2 Sawtooth", "Lead 3 Calliope", "Lead 4 Chiff",
	"Lead 5 Charang", "Lead 6 Voice", "Lead 7 Fifths", "Lead 8 Bass Lead",
	"Pad 1 New Age", "Pad 2 Warm", "Pad 3 Polysynth", "Pad 4 Choir",
	"Pad 5 Bowed", "Pad 6 Metallic", "Pad 7 Halo", "Pad 8 Sweep",
	"FX 1 Train", "FX 2 Soundtrack", "FX 3 Crystal", "FX 4 Atmosphere",
	"FX 5 Brightness", "FX 6 Goblins", "FX 7 Echoes", "FX 8 Sci-Fi",
	"Sitar", "Banjo", "Shamisen", "Koto",
	"Kalimba", "Bagpipe", "Fiddle", "Shanai",
	"Tinkle Bell", "Agogo", "Steel Drums", "Woodblock",
	"Taiko Drum", "Melodic Drum", "Synth Drum", "Reverse Cymbal",
	"Guitar Fret Noise", "Breath Noise", "Seashore", "Bird Tweet",
	"Telephone Ring", "Helicopter", "Applause", "Gunshot",
}
