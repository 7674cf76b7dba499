package motif

// PercussionSound is one of the General MIDI percussion sounds. Played on
// the Percussion instrument, the sounds map onto keys 35 (B1) to 81 (A5).
type PercussionSound int

const (
	AcousticBassDrum PercussionSound = iota
	BassDrum1
	SideStick
	AcousticSnare
	HandClap
	ElectricSnare
	LowFloorTom
	ClosedHiHat
	HighFloorTom
	PedalHiHat
	LowTom
	OpenHiHat
	LowMidTom
	HiMidTom
	CrashCymbal1
	HighTom
	RideCymbal1
	ChineseCymbal
	RideBell
	Tambourine
	SplashCymbal
	Cowbell
	CrashCymbal2
	Vibraslap
	RideCymbal2
	HiBongo
	LowBongo
	MuteHiConga
	OpenHiConga
	LowConga
	HighTimbale
	LowTimbale
	HighAgogo
	LowAgogo
	Cabasa
	Maracas
	ShortWhistle
	LongWhistle
	ShortGuiro
	LongGuiro
	Claves
	HiWoodBlock
	LowWoodBlock
	MuteCuica
	OpenCuica
	MuteTriangle
	OpenTriangle
)

const firstPercussionKey = 35

// Key returns the MIDI key that triggers the sound on the percussion channel.
func (s PercussionSound) Key() AbsPitch {
	return AbsPitch(firstPercussionKey + int(s))
}

// Note returns a note that plays the sound when performed on the Percussion
// instrument.
func (s PercussionSound) Note(d Dur) Music[Pitch] {
	return Note(d, s.Key().Pitch())
}
