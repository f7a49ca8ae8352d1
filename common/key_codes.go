package common

import "strings"

// Key codes as reported by the engine's input events.
// Printable keys use their uppercase ASCII/Latin-1 value. Every other key lives above KeySpecial (1 << 22)
// so that a key code always fits under KeyMaskCodeMask and can be combined with a KeyModifierMask.

// Key is an engine key code.
type Key int64

const (
	KeyNone       Key = 0
	KeySpecial    Key = 1 << 22 // base of the non-printable range
	KeyEscape     Key = KeySpecial + 1
	KeyTab        Key = KeySpecial + 2
	KeyBacktab    Key = KeySpecial + 3
	KeyBackspace  Key = KeySpecial + 4
	KeyEnter      Key = KeySpecial + 5
	KeyKpEnter    Key = KeySpecial + 6
	KeyInsert     Key = KeySpecial + 7
	KeyDelete     Key = KeySpecial + 8
	KeyPause      Key = KeySpecial + 9
	KeyPrint      Key = KeySpecial + 10
	KeySysReq     Key = KeySpecial + 11
	KeyClear      Key = KeySpecial + 12
	KeyHome       Key = KeySpecial + 13
	KeyEnd        Key = KeySpecial + 14
	KeyLeft       Key = KeySpecial + 15
	KeyUp         Key = KeySpecial + 16
	KeyRight      Key = KeySpecial + 17
	KeyDown       Key = KeySpecial + 18
	KeyPageUp     Key = KeySpecial + 19
	KeyPageDown   Key = KeySpecial + 20
	KeyShift      Key = KeySpecial + 21
	KeyCtrl       Key = KeySpecial + 22
	KeyMeta       Key = KeySpecial + 23
	KeyAlt        Key = KeySpecial + 24
	KeyCapsLock   Key = KeySpecial + 25
	KeyNumLock    Key = KeySpecial + 26
	KeyScrollLock Key = KeySpecial + 27

	// Function keys.
	KeyF1  Key = KeySpecial + 28
	KeyF2  Key = KeySpecial + 29
	KeyF3  Key = KeySpecial + 30
	KeyF4  Key = KeySpecial + 31
	KeyF5  Key = KeySpecial + 32
	KeyF6  Key = KeySpecial + 33
	KeyF7  Key = KeySpecial + 34
	KeyF8  Key = KeySpecial + 35
	KeyF9  Key = KeySpecial + 36
	KeyF10 Key = KeySpecial + 37
	KeyF11 Key = KeySpecial + 38
	KeyF12 Key = KeySpecial + 39
	KeyF13 Key = KeySpecial + 40
	KeyF14 Key = KeySpecial + 41
	KeyF15 Key = KeySpecial + 42
	KeyF16 Key = KeySpecial + 43
	KeyF17 Key = KeySpecial + 44
	KeyF18 Key = KeySpecial + 45
	KeyF19 Key = KeySpecial + 46
	KeyF20 Key = KeySpecial + 47
	KeyF21 Key = KeySpecial + 48
	KeyF22 Key = KeySpecial + 49
	KeyF23 Key = KeySpecial + 50
	KeyF24 Key = KeySpecial + 51
	KeyF25 Key = KeySpecial + 52
	KeyF26 Key = KeySpecial + 53
	KeyF27 Key = KeySpecial + 54
	KeyF28 Key = KeySpecial + 55
	KeyF29 Key = KeySpecial + 56
	KeyF30 Key = KeySpecial + 57
	KeyF31 Key = KeySpecial + 58
	KeyF32 Key = KeySpecial + 59
	KeyF33 Key = KeySpecial + 60
	KeyF34 Key = KeySpecial + 61
	KeyF35 Key = KeySpecial + 62

	// Keypad.
	KeyKpMultiply Key = KeySpecial + 129
	KeyKpDivide   Key = KeySpecial + 130
	KeyKpSubtract Key = KeySpecial + 131
	KeyKpPeriod   Key = KeySpecial + 132
	KeyKpAdd      Key = KeySpecial + 133
	KeyKp0        Key = KeySpecial + 134
	KeyKp1        Key = KeySpecial + 135
	KeyKp2        Key = KeySpecial + 136
	KeyKp3        Key = KeySpecial + 137
	KeyKp4        Key = KeySpecial + 138
	KeyKp5        Key = KeySpecial + 139
	KeyKp6        Key = KeySpecial + 140
	KeyKp7        Key = KeySpecial + 141
	KeyKp8        Key = KeySpecial + 142
	KeyKp9        Key = KeySpecial + 143

	// Media and launcher keys.
	KeyMenu          Key = KeySpecial + 66
	KeyHyper         Key = KeySpecial + 67
	KeyHelp          Key = KeySpecial + 69
	KeyBack          Key = KeySpecial + 72
	KeyForward       Key = KeySpecial + 73
	KeyStop          Key = KeySpecial + 74
	KeyRefresh       Key = KeySpecial + 75
	KeyVolumeDown    Key = KeySpecial + 76
	KeyVolumeMute    Key = KeySpecial + 77
	KeyVolumeUp      Key = KeySpecial + 78
	KeyMediaPlay     Key = KeySpecial + 84
	KeyMediaStop     Key = KeySpecial + 85
	KeyMediaPrevious Key = KeySpecial + 86
	KeyMediaNext     Key = KeySpecial + 87
	KeyMediaRecord   Key = KeySpecial + 88
	KeyHomePage      Key = KeySpecial + 89
	KeyFavorites     Key = KeySpecial + 90
	KeySearch        Key = KeySpecial + 91
	KeyStandby       Key = KeySpecial + 92
	KeyOpenURL       Key = KeySpecial + 93
	KeyLaunchMail    Key = KeySpecial + 94
	KeyLaunchMedia   Key = KeySpecial + 95
	KeyLaunch0       Key = KeySpecial + 96
	KeyLaunch1       Key = KeySpecial + 97
	KeyLaunch2       Key = KeySpecial + 98
	KeyLaunch3       Key = KeySpecial + 99
	KeyLaunch4       Key = KeySpecial + 100
	KeyLaunch5       Key = KeySpecial + 101
	KeyLaunch6       Key = KeySpecial + 102
	KeyLaunch7       Key = KeySpecial + 103
	KeyLaunch8       Key = KeySpecial + 104
	KeyLaunch9       Key = KeySpecial + 105
	KeyLaunchA       Key = KeySpecial + 106
	KeyLaunchB       Key = KeySpecial + 107
	KeyLaunchC       Key = KeySpecial + 108
	KeyLaunchD       Key = KeySpecial + 109
	KeyLaunchE       Key = KeySpecial + 110
	KeyLaunchF       Key = KeySpecial + 111
	KeyGlobe         Key = KeySpecial + 112 // "Globe" key on Mac / iPad keyboards
	KeyKeyboard      Key = KeySpecial + 113 // on-screen keyboard key on iPad
	KeyJISEisu       Key = KeySpecial + 114
	KeyJISKana       Key = KeySpecial + 115

	KeyUnknown Key = 1<<23 - 1 // same bits as KeyMaskCodeMask

	// Printable keys.
	KeySpace        Key = 32
	KeyExclam       Key = 33
	KeyQuoteDbl     Key = 34
	KeyNumberSign   Key = 35
	KeyDollar       Key = 36
	KeyPercent      Key = 37
	KeyAmpersand    Key = 38
	KeyApostrophe   Key = 39
	KeyParenLeft    Key = 40
	KeyParenRight   Key = 41
	KeyAsterisk     Key = 42
	KeyPlus         Key = 43
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = '0'
	Key1            Key = '1'
	Key2            Key = '2'
	Key3            Key = '3'
	Key4            Key = '4'
	Key5            Key = '5'
	Key6            Key = '6'
	Key7            Key = '7'
	Key8            Key = '8'
	Key9            Key = '9'
	KeyColon        Key = 58
	KeySemicolon    Key = 59
	KeyLess         Key = 60
	KeyEqual        Key = 61
	KeyGreater      Key = 62
	KeyQuestion     Key = 63
	KeyAt           Key = 64
	KeyA            Key = 'A'
	KeyB            Key = 'B'
	KeyC            Key = 'C'
	KeyD            Key = 'D'
	KeyE            Key = 'E'
	KeyF            Key = 'F'
	KeyG            Key = 'G'
	KeyH            Key = 'H'
	KeyI            Key = 'I'
	KeyJ            Key = 'J'
	KeyK            Key = 'K'
	KeyL            Key = 'L'
	KeyM            Key = 'M'
	KeyN            Key = 'N'
	KeyO            Key = 'O'
	KeyP            Key = 'P'
	KeyQ            Key = 'Q'
	KeyR            Key = 'R'
	KeyS            Key = 'S'
	KeyT            Key = 'T'
	KeyU            Key = 'U'
	KeyV            Key = 'V'
	KeyW            Key = 'W'
	KeyX            Key = 'X'
	KeyY            Key = 'Y'
	KeyZ            Key = 'Z'
	KeyBracketLeft  Key = 91
	KeyBackslash    Key = 92
	KeyBracketRight Key = 93
	KeyAsciiCircum  Key = 94
	KeyUnderscore   Key = 95
	KeyQuoteLeft    Key = 96
	KeyBraceLeft    Key = 123
	KeyBar          Key = 124
	KeyBraceRight   Key = 125
	KeyAsciiTilde   Key = 126
	KeyYen          Key = 165
	KeySection      Key = 167
)

var KeyEnum = MustEnum("Key", []Member[Key]{
	{Name: "None", EngineName: "KEY_NONE", Value: KeyNone},
	{Name: "Special", EngineName: "KEY_SPECIAL", Value: KeySpecial},
	{Name: "Escape", EngineName: "KEY_ESCAPE", Value: KeyEscape},
	{Name: "Tab", EngineName: "KEY_TAB", Value: KeyTab},
	{Name: "Backtab", EngineName: "KEY_BACKTAB", Value: KeyBacktab},
	{Name: "Backspace", EngineName: "KEY_BACKSPACE", Value: KeyBackspace},
	{Name: "Enter", EngineName: "KEY_ENTER", Value: KeyEnter},
	{Name: "KpEnter", EngineName: "KEY_KP_ENTER", Value: KeyKpEnter},
	{Name: "Insert", EngineName: "KEY_INSERT", Value: KeyInsert},
	{Name: "Delete", EngineName: "KEY_DELETE", Value: KeyDelete},
	{Name: "Pause", EngineName: "KEY_PAUSE", Value: KeyPause},
	{Name: "Print", EngineName: "KEY_PRINT", Value: KeyPrint},
	{Name: "SysReq", EngineName: "KEY_SYSREQ", Value: KeySysReq},
	{Name: "Clear", EngineName: "KEY_CLEAR", Value: KeyClear},
	{Name: "Home", EngineName: "KEY_HOME", Value: KeyHome},
	{Name: "End", EngineName: "KEY_END", Value: KeyEnd},
	{Name: "Left", EngineName: "KEY_LEFT", Value: KeyLeft},
	{Name: "Up", EngineName: "KEY_UP", Value: KeyUp},
	{Name: "Right", EngineName: "KEY_RIGHT", Value: KeyRight},
	{Name: "Down", EngineName: "KEY_DOWN", Value: KeyDown},
	{Name: "PageUp", EngineName: "KEY_PAGEUP", Value: KeyPageUp},
	{Name: "PageDown", EngineName: "KEY_PAGEDOWN", Value: KeyPageDown},
	{Name: "Shift", EngineName: "KEY_SHIFT", Value: KeyShift},
	{Name: "Ctrl", EngineName: "KEY_CTRL", Value: KeyCtrl},
	{Name: "Meta", EngineName: "KEY_META", Value: KeyMeta},
	{Name: "Alt", EngineName: "KEY_ALT", Value: KeyAlt},
	{Name: "CapsLock", EngineName: "KEY_CAPSLOCK", Value: KeyCapsLock},
	{Name: "NumLock", EngineName: "KEY_NUMLOCK", Value: KeyNumLock},
	{Name: "ScrollLock", EngineName: "KEY_SCROLLLOCK", Value: KeyScrollLock},
	{Name: "F1", EngineName: "KEY_F1", Value: KeyF1},
	{Name: "F2", EngineName: "KEY_F2", Value: KeyF2},
	{Name: "F3", EngineName: "KEY_F3", Value: KeyF3},
	{Name: "F4", EngineName: "KEY_F4", Value: KeyF4},
	{Name: "F5", EngineName: "KEY_F5", Value: KeyF5},
	{Name: "F6", EngineName: "KEY_F6", Value: KeyF6},
	{Name: "F7", EngineName: "KEY_F7", Value: KeyF7},
	{Name: "F8", EngineName: "KEY_F8", Value: KeyF8},
	{Name: "F9", EngineName: "KEY_F9", Value: KeyF9},
	{Name: "F10", EngineName: "KEY_F10", Value: KeyF10},
	{Name: "F11", EngineName: "KEY_F11", Value: KeyF11},
	{Name: "F12", EngineName: "KEY_F12", Value: KeyF12},
	{Name: "F13", EngineName: "KEY_F13", Value: KeyF13},
	{Name: "F14", EngineName: "KEY_F14", Value: KeyF14},
	{Name: "F15", EngineName: "KEY_F15", Value: KeyF15},
	{Name: "F16", EngineName: "KEY_F16", Value: KeyF16},
	{Name: "F17", EngineName: "KEY_F17", Value: KeyF17},
	{Name: "F18", EngineName: "KEY_F18", Value: KeyF18},
	{Name: "F19", EngineName: "KEY_F19", Value: KeyF19},
	{Name: "F20", EngineName: "KEY_F20", Value: KeyF20},
	{Name: "F21", EngineName: "KEY_F21", Value: KeyF21},
	{Name: "F22", EngineName: "KEY_F22", Value: KeyF22},
	{Name: "F23", EngineName: "KEY_F23", Value: KeyF23},
	{Name: "F24", EngineName: "KEY_F24", Value: KeyF24},
	{Name: "F25", EngineName: "KEY_F25", Value: KeyF25},
	{Name: "F26", EngineName: "KEY_F26", Value: KeyF26},
	{Name: "F27", EngineName: "KEY_F27", Value: KeyF27},
	{Name: "F28", EngineName: "KEY_F28", Value: KeyF28},
	{Name: "F29", EngineName: "KEY_F29", Value: KeyF29},
	{Name: "F30", EngineName: "KEY_F30", Value: KeyF30},
	{Name: "F31", EngineName: "KEY_F31", Value: KeyF31},
	{Name: "F32", EngineName: "KEY_F32", Value: KeyF32},
	{Name: "F33", EngineName: "KEY_F33", Value: KeyF33},
	{Name: "F34", EngineName: "KEY_F34", Value: KeyF34},
	{Name: "F35", EngineName: "KEY_F35", Value: KeyF35},
	{Name: "KpMultiply", EngineName: "KEY_KP_MULTIPLY", Value: KeyKpMultiply},
	{Name: "KpDivide", EngineName: "KEY_KP_DIVIDE", Value: KeyKpDivide},
	{Name: "KpSubtract", EngineName: "KEY_KP_SUBTRACT", Value: KeyKpSubtract},
	{Name: "KpPeriod", EngineName: "KEY_KP_PERIOD", Value: KeyKpPeriod},
	{Name: "KpAdd", EngineName: "KEY_KP_ADD", Value: KeyKpAdd},
	{Name: "Kp0", EngineName: "KEY_KP_0", Value: KeyKp0},
	{Name: "Kp1", EngineName: "KEY_KP_1", Value: KeyKp1},
	{Name: "Kp2", EngineName: "KEY_KP_2", Value: KeyKp2},
	{Name: "Kp3", EngineName: "KEY_KP_3", Value: KeyKp3},
	{Name: "Kp4", EngineName: "KEY_KP_4", Value: KeyKp4},
	{Name: "Kp5", EngineName: "KEY_KP_5", Value: KeyKp5},
	{Name: "Kp6", EngineName: "KEY_KP_6", Value: KeyKp6},
	{Name: "Kp7", EngineName: "KEY_KP_7", Value: KeyKp7},
	{Name: "Kp8", EngineName: "KEY_KP_8", Value: KeyKp8},
	{Name: "Kp9", EngineName: "KEY_KP_9", Value: KeyKp9},
	{Name: "Menu", EngineName: "KEY_MENU", Value: KeyMenu},
	{Name: "Hyper", EngineName: "KEY_HYPER", Value: KeyHyper},
	{Name: "Help", EngineName: "KEY_HELP", Value: KeyHelp},
	{Name: "Back", EngineName: "KEY_BACK", Value: KeyBack},
	{Name: "Forward", EngineName: "KEY_FORWARD", Value: KeyForward},
	{Name: "Stop", EngineName: "KEY_STOP", Value: KeyStop},
	{Name: "Refresh", EngineName: "KEY_REFRESH", Value: KeyRefresh},
	{Name: "VolumeDown", EngineName: "KEY_VOLUMEDOWN", Value: KeyVolumeDown},
	{Name: "VolumeMute", EngineName: "KEY_VOLUMEMUTE", Value: KeyVolumeMute},
	{Name: "VolumeUp", EngineName: "KEY_VOLUMEUP", Value: KeyVolumeUp},
	{Name: "MediaPlay", EngineName: "KEY_MEDIAPLAY", Value: KeyMediaPlay},
	{Name: "MediaStop", EngineName: "KEY_MEDIASTOP", Value: KeyMediaStop},
	{Name: "MediaPrevious", EngineName: "KEY_MEDIAPREVIOUS", Value: KeyMediaPrevious},
	{Name: "MediaNext", EngineName: "KEY_MEDIANEXT", Value: KeyMediaNext},
	{Name: "MediaRecord", EngineName: "KEY_MEDIARECORD", Value: KeyMediaRecord},
	{Name: "HomePage", EngineName: "KEY_HOMEPAGE", Value: KeyHomePage},
	{Name: "Favorites", EngineName: "KEY_FAVORITES", Value: KeyFavorites},
	{Name: "Search", EngineName: "KEY_SEARCH", Value: KeySearch},
	{Name: "Standby", EngineName: "KEY_STANDBY", Value: KeyStandby},
	{Name: "OpenURL", EngineName: "KEY_OPENURL", Value: KeyOpenURL},
	{Name: "LaunchMail", EngineName: "KEY_LAUNCHMAIL", Value: KeyLaunchMail},
	{Name: "LaunchMedia", EngineName: "KEY_LAUNCHMEDIA", Value: KeyLaunchMedia},
	{Name: "Launch0", EngineName: "KEY_LAUNCH0", Value: KeyLaunch0},
	{Name: "Launch1", EngineName: "KEY_LAUNCH1", Value: KeyLaunch1},
	{Name: "Launch2", EngineName: "KEY_LAUNCH2", Value: KeyLaunch2},
	{Name: "Launch3", EngineName: "KEY_LAUNCH3", Value: KeyLaunch3},
	{Name: "Launch4", EngineName: "KEY_LAUNCH4", Value: KeyLaunch4},
	{Name: "Launch5", EngineName: "KEY_LAUNCH5", Value: KeyLaunch5},
	{Name: "Launch6", EngineName: "KEY_LAUNCH6", Value: KeyLaunch6},
	{Name: "Launch7", EngineName: "KEY_LAUNCH7", Value: KeyLaunch7},
	{Name: "Launch8", EngineName: "KEY_LAUNCH8", Value: KeyLaunch8},
	{Name: "Launch9", EngineName: "KEY_LAUNCH9", Value: KeyLaunch9},
	{Name: "LaunchA", EngineName: "KEY_LAUNCHA", Value: KeyLaunchA},
	{Name: "LaunchB", EngineName: "KEY_LAUNCHB", Value: KeyLaunchB},
	{Name: "LaunchC", EngineName: "KEY_LAUNCHC", Value: KeyLaunchC},
	{Name: "LaunchD", EngineName: "KEY_LAUNCHD", Value: KeyLaunchD},
	{Name: "LaunchE", EngineName: "KEY_LAUNCHE", Value: KeyLaunchE},
	{Name: "LaunchF", EngineName: "KEY_LAUNCHF", Value: KeyLaunchF},
	{Name: "Globe", EngineName: "KEY_GLOBE", Value: KeyGlobe},
	{Name: "Keyboard", EngineName: "KEY_KEYBOARD", Value: KeyKeyboard},
	{Name: "JISEisu", EngineName: "KEY_JIS_EISU", Value: KeyJISEisu},
	{Name: "JISKana", EngineName: "KEY_JIS_KANA", Value: KeyJISKana},
	{Name: "Unknown", EngineName: "KEY_UNKNOWN", Value: KeyUnknown},
	{Name: "Space", EngineName: "KEY_SPACE", Value: KeySpace},
	{Name: "Exclam", EngineName: "KEY_EXCLAM", Value: KeyExclam},
	{Name: "QuoteDbl", EngineName: "KEY_QUOTEDBL", Value: KeyQuoteDbl},
	{Name: "NumberSign", EngineName: "KEY_NUMBERSIGN", Value: KeyNumberSign},
	{Name: "Dollar", EngineName: "KEY_DOLLAR", Value: KeyDollar},
	{Name: "Percent", EngineName: "KEY_PERCENT", Value: KeyPercent},
	{Name: "Ampersand", EngineName: "KEY_AMPERSAND", Value: KeyAmpersand},
	{Name: "Apostrophe", EngineName: "KEY_APOSTROPHE", Value: KeyApostrophe},
	{Name: "ParenLeft", EngineName: "KEY_PARENLEFT", Value: KeyParenLeft},
	{Name: "ParenRight", EngineName: "KEY_PARENRIGHT", Value: KeyParenRight},
	{Name: "Asterisk", EngineName: "KEY_ASTERISK", Value: KeyAsterisk},
	{Name: "Plus", EngineName: "KEY_PLUS", Value: KeyPlus},
	{Name: "Comma", EngineName: "KEY_COMMA", Value: KeyComma},
	{Name: "Minus", EngineName: "KEY_MINUS", Value: KeyMinus},
	{Name: "Period", EngineName: "KEY_PERIOD", Value: KeyPeriod},
	{Name: "Slash", EngineName: "KEY_SLASH", Value: KeySlash},
	{Name: "0", EngineName: "KEY_0", Value: Key0},
	{Name: "1", EngineName: "KEY_1", Value: Key1},
	{Name: "2", EngineName: "KEY_2", Value: Key2},
	{Name: "3", EngineName: "KEY_3", Value: Key3},
	{Name: "4", EngineName: "KEY_4", Value: Key4},
	{Name: "5", EngineName: "KEY_5", Value: Key5},
	{Name: "6", EngineName: "KEY_6", Value: Key6},
	{Name: "7", EngineName: "KEY_7", Value: Key7},
	{Name: "8", EngineName: "KEY_8", Value: Key8},
	{Name: "9", EngineName: "KEY_9", Value: Key9},
	{Name: "Colon", EngineName: "KEY_COLON", Value: KeyColon},
	{Name: "Semicolon", EngineName: "KEY_SEMICOLON", Value: KeySemicolon},
	{Name: "Less", EngineName: "KEY_LESS", Value: KeyLess},
	{Name: "Equal", EngineName: "KEY_EQUAL", Value: KeyEqual},
	{Name: "Greater", EngineName: "KEY_GREATER", Value: KeyGreater},
	{Name: "Question", EngineName: "KEY_QUESTION", Value: KeyQuestion},
	{Name: "At", EngineName: "KEY_AT", Value: KeyAt},
	{Name: "A", EngineName: "KEY_A", Value: KeyA},
	{Name: "B", EngineName: "KEY_B", Value: KeyB},
	{Name: "C", EngineName: "KEY_C", Value: KeyC},
	{Name: "D", EngineName: "KEY_D", Value: KeyD},
	{Name: "E", EngineName: "KEY_E", Value: KeyE},
	{Name: "F", EngineName: "KEY_F", Value: KeyF},
	{Name: "G", EngineName: "KEY_G", Value: KeyG},
	{Name: "H", EngineName: "KEY_H", Value: KeyH},
	{Name: "I", EngineName: "KEY_I", Value: KeyI},
	{Name: "J", EngineName: "KEY_J", Value: KeyJ},
	{Name: "K", EngineName: "KEY_K", Value: KeyK},
	{Name: "L", EngineName: "KEY_L", Value: KeyL},
	{Name: "M", EngineName: "KEY_M", Value: KeyM},
	{Name: "N", EngineName: "KEY_N", Value: KeyN},
	{Name: "O", EngineName: "KEY_O", Value: KeyO},
	{Name: "P", EngineName: "KEY_P", Value: KeyP},
	{Name: "Q", EngineName: "KEY_Q", Value: KeyQ},
	{Name: "R", EngineName: "KEY_R", Value: KeyR},
	{Name: "S", EngineName: "KEY_S", Value: KeyS},
	{Name: "T", EngineName: "KEY_T", Value: KeyT},
	{Name: "U", EngineName: "KEY_U", Value: KeyU},
	{Name: "V", EngineName: "KEY_V", Value: KeyV},
	{Name: "W", EngineName: "KEY_W", Value: KeyW},
	{Name: "X", EngineName: "KEY_X", Value: KeyX},
	{Name: "Y", EngineName: "KEY_Y", Value: KeyY},
	{Name: "Z", EngineName: "KEY_Z", Value: KeyZ},
	{Name: "BracketLeft", EngineName: "KEY_BRACKETLEFT", Value: KeyBracketLeft},
	{Name: "Backslash", EngineName: "KEY_BACKSLASH", Value: KeyBackslash},
	{Name: "BracketRight", EngineName: "KEY_BRACKETRIGHT", Value: KeyBracketRight},
	{Name: "AsciiCircum", EngineName: "KEY_ASCIICIRCUM", Value: KeyAsciiCircum},
	{Name: "Underscore", EngineName: "KEY_UNDERSCORE", Value: KeyUnderscore},
	{Name: "QuoteLeft", EngineName: "KEY_QUOTELEFT", Value: KeyQuoteLeft},
	{Name: "BraceLeft", EngineName: "KEY_BRACELEFT", Value: KeyBraceLeft},
	{Name: "Bar", EngineName: "KEY_BAR", Value: KeyBar},
	{Name: "BraceRight", EngineName: "KEY_BRACERIGHT", Value: KeyBraceRight},
	{Name: "AsciiTilde", EngineName: "KEY_ASCIITILDE", Value: KeyAsciiTilde},
	{Name: "Yen", EngineName: "KEY_YEN", Value: KeyYen},
	{Name: "Section", EngineName: "KEY_SECTION", Value: KeySection},
})

// KeyModifierMask holds the modifier bits that sit above a key code.
// KeyMaskCodeMask and KeyMaskModifierMask split a combined code into its two halves.
type KeyModifierMask int64

const (
	KeyMaskCodeMask     KeyModifierMask = 1<<23 - 1 // isolates the key code
	KeyMaskModifierMask KeyModifierMask = 0x7f << 24 // isolates the modifiers

	KeyMaskCmdOrCtrl   KeyModifierMask = 1 << 24 // Meta on macOS, Ctrl elsewhere
	KeyMaskShift       KeyModifierMask = 1 << 25
	KeyMaskAlt         KeyModifierMask = 1 << 26
	KeyMaskMeta        KeyModifierMask = 1 << 27
	KeyMaskCtrl        KeyModifierMask = 1 << 28
	KeyMaskKpad        KeyModifierMask = 1 << 29
	KeyMaskGroupSwitch KeyModifierMask = 1 << 30
)

var KeyModifierMaskEnum = MustEnum("KeyModifierMask", []Member[KeyModifierMask]{
	{Name: "CodeMask", EngineName: "KEY_CODE_MASK", Value: KeyMaskCodeMask, Composite: true},
	{Name: "ModifierMask", EngineName: "KEY_MODIFIER_MASK", Value: KeyMaskModifierMask, Composite: true},
	{Name: "CmdOrCtrl", EngineName: "KEY_MASK_CMD_OR_CTRL", Value: KeyMaskCmdOrCtrl},
	{Name: "Shift", EngineName: "KEY_MASK_SHIFT", Value: KeyMaskShift},
	{Name: "Alt", EngineName: "KEY_MASK_ALT", Value: KeyMaskAlt},
	{Name: "Meta", EngineName: "KEY_MASK_META", Value: KeyMaskMeta},
	{Name: "Ctrl", EngineName: "KEY_MASK_CTRL", Value: KeyMaskCtrl},
	{Name: "Kpad", EngineName: "KEY_MASK_KPAD", Value: KeyMaskKpad},
	{Name: "GroupSwitch", EngineName: "KEY_MASK_GROUP_SWITCH", Value: KeyMaskGroupSwitch},
}, AsFlags())

// KeyLocation tells apart keys that exist twice on a keyboard, such as the two Shift keys.
type KeyLocation int64

const (
	KeyLocationUnspecified KeyLocation = 0
	KeyLocationLeft        KeyLocation = 1
	KeyLocationRight       KeyLocation = 2
)

var KeyLocationEnum = MustEnum("KeyLocation", []Member[KeyLocation]{
	{Name: "Unspecified", EngineName: "KEY_LOCATION_UNSPECIFIED", Value: KeyLocationUnspecified},
	{Name: "Left", EngineName: "KEY_LOCATION_LEFT", Value: KeyLocationLeft},
	{Name: "Right", EngineName: "KEY_LOCATION_RIGHT", Value: KeyLocationRight},
})

func (k Key) String() string             { return KeyEnum.NameOf(k) }
func (m KeyModifierMask) String() string { return KeyModifierMaskEnum.Format(m) }
func (l KeyLocation) String() string     { return KeyLocationEnum.NameOf(l) }

// IsSpecial reports whether the key lives in the non-printable range.
func (k Key) IsSpecial() bool {
	return k&KeySpecial != 0 && k != KeyUnknown
}

// IsModifier reports whether the key is itself a modifier key.
func (k Key) IsModifier() bool {
	switch k {
	case KeyShift, KeyCtrl, KeyAlt, KeyMeta:
		return true
	}
	return false
}

// ModifierMask returns the mask bit a modifier key contributes while held, or 0 for other keys.
func (k Key) ModifierMask() KeyModifierMask {
	switch k {
	case KeyShift:
		return KeyMaskShift
	case KeyCtrl:
		return KeyMaskCtrl
	case KeyAlt:
		return KeyMaskAlt
	case KeyMeta:
		return KeyMaskMeta
	}
	return 0
}

// WithModifiers combines the key with a modifier mask into a single key code.
//
// Parameters:
//   - mods: modifier bits to add; bits outside KeyMaskModifierMask are dropped
//
// Returns:
//   - int64: the combined code
func (k Key) WithModifiers(mods KeyModifierMask) int64 {
	return int64(k)&int64(KeyMaskCodeMask) | int64(mods&KeyMaskModifierMask)
}

// SplitKeycode separates a combined key code into its key and modifier halves.
//
// Parameters:
//   - code: a key code, optionally combined with modifier bits
//
// Returns:
//   - Key: the key part
//   - KeyModifierMask: the modifier part
func SplitKeycode(code int64) (Key, KeyModifierMask) {
	return Key(code & int64(KeyMaskCodeMask)), KeyModifierMask(code & int64(KeyMaskModifierMask))
}

// keycodeModifiers is the order modifiers are printed in by KeycodeString.
var keycodeModifiers = []struct {
	mask KeyModifierMask
	name string
}{
	{KeyMaskShift, "Shift"},
	{KeyMaskAlt, "Alt"},
	{KeyMaskCmdOrCtrl, "CmdOrCtrl"},
	{KeyMaskCtrl, "Ctrl"},
	{KeyMaskMeta, "Meta"},
	{KeyMaskKpad, "Kpad"},
	{KeyMaskGroupSwitch, "GroupSwitch"},
}

// KeycodeString renders a combined key code as "Shift+Ctrl+A".
// A code without a key part renders only the modifiers, without a trailing "+".
// ParseKeycode reads such a string back as the modifier key, not the bare mask.
//
// Parameters:
//   - code: a key code, optionally combined with modifier bits
//
// Returns:
//   - string: the rendered shortcut
func KeycodeString(code int64) string {
	key, mods := SplitKeycode(code)

	var parts []string
	for _, m := range keycodeModifiers {
		if Has(mods, m.mask) {
			parts = append(parts, m.name)
		}
	}
	if key != KeyNone || len(parts) == 0 {
		parts = append(parts, key.String())
	}
	return strings.Join(parts, "+")
}
