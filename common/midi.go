package common

// MIDIMessage is the status of a MIDI message.
// Channel voice messages carry the high nibble only (0x8-0xE); system messages use the full byte.
type MIDIMessage int64

const (
	MIDIMessageNone            MIDIMessage = 0x0
	MIDIMessageNoteOff         MIDIMessage = 0x8
	MIDIMessageNoteOn          MIDIMessage = 0x9
	MIDIMessageAftertouch      MIDIMessage = 0xA
	MIDIMessageControlChange   MIDIMessage = 0xB
	MIDIMessageProgramChange   MIDIMessage = 0xC
	MIDIMessageChannelPressure MIDIMessage = 0xD
	MIDIMessagePitchBend       MIDIMessage = 0xE

	// System common and real-time messages.
	MIDIMessageSystemExclusive     MIDIMessage = 0xF0
	MIDIMessageQuarterFrame        MIDIMessage = 0xF1
	MIDIMessageSongPositionPointer MIDIMessage = 0xF2
	MIDIMessageSongSelect          MIDIMessage = 0xF3
	MIDIMessageTuneRequest         MIDIMessage = 0xF6
	MIDIMessageTimingClock         MIDIMessage = 0xF8
	MIDIMessageStart               MIDIMessage = 0xFA
	MIDIMessageContinue            MIDIMessage = 0xFB
	MIDIMessageStop                MIDIMessage = 0xFC
	MIDIMessageActiveSensing       MIDIMessage = 0xFE
	MIDIMessageSystemReset         MIDIMessage = 0xFF
)

var MIDIMessageEnum = MustEnum("MIDIMessage", []Member[MIDIMessage]{
	{Name: "None", EngineName: "MIDI_MESSAGE_NONE", Value: MIDIMessageNone},
	{Name: "NoteOff", EngineName: "MIDI_MESSAGE_NOTE_OFF", Value: MIDIMessageNoteOff},
	{Name: "NoteOn", EngineName: "MIDI_MESSAGE_NOTE_ON", Value: MIDIMessageNoteOn},
	{Name: "Aftertouch", EngineName: "MIDI_MESSAGE_AFTERTOUCH", Value: MIDIMessageAftertouch},
	{Name: "ControlChange", EngineName: "MIDI_MESSAGE_CONTROL_CHANGE", Value: MIDIMessageControlChange},
	{Name: "ProgramChange", EngineName: "MIDI_MESSAGE_PROGRAM_CHANGE", Value: MIDIMessageProgramChange},
	{Name: "ChannelPressure", EngineName: "MIDI_MESSAGE_CHANNEL_PRESSURE", Value: MIDIMessageChannelPressure},
	{Name: "PitchBend", EngineName: "MIDI_MESSAGE_PITCH_BEND", Value: MIDIMessagePitchBend},
	{Name: "SystemExclusive", EngineName: "MIDI_MESSAGE_SYSTEM_EXCLUSIVE", Value: MIDIMessageSystemExclusive},
	{Name: "QuarterFrame", EngineName: "MIDI_MESSAGE_QUARTER_FRAME", Value: MIDIMessageQuarterFrame},
	{Name: "SongPositionPointer", EngineName: "MIDI_MESSAGE_SONG_POSITION_POINTER", Value: MIDIMessageSongPositionPointer},
	{Name: "SongSelect", EngineName: "MIDI_MESSAGE_SONG_SELECT", Value: MIDIMessageSongSelect},
	{Name: "TuneRequest", EngineName: "MIDI_MESSAGE_TUNE_REQUEST", Value: MIDIMessageTuneRequest},
	{Name: "TimingClock", EngineName: "MIDI_MESSAGE_TIMING_CLOCK", Value: MIDIMessageTimingClock},
	{Name: "Start", EngineName: "MIDI_MESSAGE_START", Value: MIDIMessageStart},
	{Name: "Continue", EngineName: "MIDI_MESSAGE_CONTINUE", Value: MIDIMessageContinue},
	{Name: "Stop", EngineName: "MIDI_MESSAGE_STOP", Value: MIDIMessageStop},
	{Name: "ActiveSensing", EngineName: "MIDI_MESSAGE_ACTIVE_SENSING", Value: MIDIMessageActiveSensing},
	{Name: "SystemReset", EngineName: "MIDI_MESSAGE_SYSTEM_RESET", Value: MIDIMessageSystemReset},
})

func (m MIDIMessage) String() string { return MIDIMessageEnum.NameOf(m) }

// MIDIMessageFromStatus extracts the message from a raw MIDI status byte.
// Channel voice statuses (0x80-0xEF) keep only the high nibble; the channel is returned separately.
// Statuses below 0x80 are data bytes and yield MIDIMessageNone.
//
// Parameters:
//   - status: the raw status byte
//
// Returns:
//   - MIDIMessage: the message
//   - int: the channel (0-15) for channel voice messages, -1 otherwise
func MIDIMessageFromStatus(status byte) (MIDIMessage, int) {
	switch {
	case status < 0x80:
		return MIDIMessageNone, -1
	case status < 0xF0:
		return MIDIMessage(status >> 4), int(status & 0x0F)
	default:
		return MIDIMessage(status), -1
	}
}
