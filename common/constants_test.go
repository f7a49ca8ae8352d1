package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineAlignmentCombinations(t *testing.T) {
	assert.Equal(t, InlineAlignmentTopTo|InlineAlignmentToTop, InlineAlignmentTop)
	assert.Equal(t, InlineAlignment(0), InlineAlignmentTop)
	assert.Equal(t, InlineAlignmentCenterTo|InlineAlignmentToCenter, InlineAlignmentCenter)
	assert.Equal(t, InlineAlignment(5), InlineAlignmentCenter)
	assert.Equal(t, InlineAlignmentBottomTo|InlineAlignmentToBottom, InlineAlignmentBottom)
	assert.Equal(t, InlineAlignment(14), InlineAlignmentBottom)

	assert.Equal(t, InlineAlignmentBottomTo, InlineAlignmentBottom.Image())
	assert.Equal(t, InlineAlignmentToBottom, InlineAlignmentBottom.Text())
	assert.Equal(t, InlineAlignmentCenterTo, InlineAlignmentCenter.Image())
	assert.Equal(t, InlineAlignmentToCenter, InlineAlignmentCenter.Text())

	assert.Equal(t, []string{"TopTo", "ToTop", "Top"}, InlineAlignmentEnum.Names(0))
	assert.Equal(t, []string{"BaselineTo", "ImageMask"}, InlineAlignmentEnum.Names(3))
	assert.Equal(t, []string{"ToBottom", "TextMask"}, InlineAlignmentEnum.Names(12))
}

func TestPropertyUsageDefault(t *testing.T) {
	assert.Equal(t, PropertyUsageStorage|PropertyUsageEditor, PropertyUsageDefault)
	assert.Equal(t, PropertyUsageFlags(6), PropertyUsageDefault)
	assert.Equal(t, PropertyUsageStorage, PropertyUsageNoEditor)

	assert.Equal(t, "Default", PropertyUsageDefault.String())
	assert.Equal(t, "Storage", PropertyUsageNoEditor.String())
	assert.Equal(t, "Storage|Editor|Internal", (PropertyUsageDefault | PropertyUsageInternal).String())
	assert.Equal(t, "PROPERTY_USAGE_STORAGE|PROPERTY_USAGE_READ_ONLY",
		PropertyUsageFlagsEnum.FormatEngine(PropertyUsageStorage|PropertyUsageReadOnly))

	v, err := PropertyUsageFlagsEnum.Parse("storage|EDITOR")
	require.NoError(t, err)
	assert.Equal(t, PropertyUsageDefault, v)
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{name: "Variant.Type.Max", got: int64(VariantTypeMax), want: 39},
		{name: "Variant.Operator.Max", got: int64(OpMax), want: 25},
		{name: "JoyButton.Max", got: int64(JoyButtonMax), want: 128},
		{name: "JoyButton.SDLMax", got: int64(JoyButtonSDLMax), want: 21},
		{name: "JoyAxis.Max", got: int64(JoyAxisMax), want: 10},
		{name: "PropertyHint.Max", got: int64(PropertyHintMax), want: 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	limit, ok := VariantTypeEnum.Max()
	require.True(t, ok)
	assert.Equal(t, VariantTypeMax, limit)

	limit2, ok := JoyButtonEnum.Max()
	require.True(t, ok)
	assert.Equal(t, JoyButtonMax, limit2)
}

func TestKeyValues(t *testing.T) {
	tests := []struct {
		key  Key
		want int64
		name string
	}{
		{KeyNone, 0, "None"},
		{KeySpecial, 4194304, "Special"},
		{KeyEscape, 4194305, "Escape"},
		{KeyScrollLock, 4194331, "ScrollLock"},
		{KeyF1, 4194332, "F1"},
		{KeyF35, 4194366, "F35"},
		{KeyKpMultiply, 4194433, "KpMultiply"},
		{KeyKp0, 4194438, "Kp0"},
		{KeyKp9, 4194447, "Kp9"},
		{KeyMenu, 4194370, "Menu"},
		{KeyLaunch0, 4194400, "Launch0"},
		{KeyLaunchF, 4194415, "LaunchF"},
		{KeyJISKana, 4194419, "JISKana"},
		{KeyUnknown, 8388607, "Unknown"},
		{KeySpace, 32, "Space"},
		{Key0, 48, "0"},
		{KeyA, 65, "A"},
		{KeyZ, 90, "Z"},
		{KeyQuoteLeft, 96, "QuoteLeft"},
		{KeySection, 167, "Section"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, int64(tt.key))
			assert.Equal(t, tt.name, tt.key.String())
		})
	}

	assert.Equal(t, "Key(12345)", Key(12345).String())
}

func TestKeyClassification(t *testing.T) {
	assert.True(t, KeyEscape.IsSpecial())
	assert.True(t, KeyF12.IsSpecial())
	assert.False(t, KeyA.IsSpecial())
	assert.False(t, KeyUnknown.IsSpecial())

	assert.True(t, KeyShift.IsModifier())
	assert.True(t, KeyMeta.IsModifier())
	assert.False(t, KeyCapsLock.IsModifier())

	assert.Equal(t, KeyMaskShift, KeyShift.ModifierMask())
	assert.Equal(t, KeyMaskCtrl, KeyCtrl.ModifierMask())
	assert.Equal(t, KeyModifierMask(0), KeyA.ModifierMask())
}

func TestKeycodeCombination(t *testing.T) {
	code := KeyA.WithModifiers(KeyMaskShift | KeyMaskCtrl)
	assert.Equal(t, int64(65)|int64(KeyMaskShift)|int64(KeyMaskCtrl), code)

	key, mods := SplitKeycode(code)
	assert.Equal(t, KeyA, key)
	assert.Equal(t, KeyMaskShift|KeyMaskCtrl, mods)
	assert.True(t, Has(mods, KeyMaskShift))
	assert.False(t, Has(mods, KeyMaskAlt))

	// bits outside the modifier range never leak into the key code
	assert.Equal(t, int64(KeyEscape), KeyEscape.WithModifiers(KeyModifierMask(1)))
}

func TestKeycodeString(t *testing.T) {
	tests := []struct {
		name string
		code int64
		want string
	}{
		{"plain key", int64(KeyEscape), "Escape"},
		{"shift ctrl", KeyA.WithModifiers(KeyMaskCtrl | KeyMaskShift), "Shift+Ctrl+A"},
		{"all common modifiers", KeyF5.WithModifiers(KeyMaskMeta | KeyMaskAlt | KeyMaskCmdOrCtrl), "Alt+CmdOrCtrl+Meta+F5"},
		{"modifiers only", int64(KeyMaskAlt), "Alt"},
		{"nothing", 0, "None"},
		{"digit", Key1.WithModifiers(KeyMaskCtrl), "Ctrl+1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeycodeString(tt.code))
		})
	}
}

func TestKeyModifierMaskFormat(t *testing.T) {
	assert.Equal(t, "Shift|Ctrl", (KeyMaskShift | KeyMaskCtrl).String())
	assert.Equal(t, "ModifierMask", KeyMaskModifierMask.String())
	assert.Equal(t, "Shift|0x1", (KeyMaskShift | 1).String())
	assert.Equal(t, KeyMaskModifierMask,
		KeyMaskCmdOrCtrl|KeyMaskShift|KeyMaskAlt|KeyMaskMeta|KeyMaskCtrl|KeyMaskKpad|KeyMaskGroupSwitch)
	assert.Zero(t, KeyMaskCodeMask&KeyMaskModifierMask)
}

func TestMouseButtonMask(t *testing.T) {
	tests := []struct {
		button MouseButton
		want   MouseButtonMask
	}{
		{MouseButtonNone, 0},
		{MouseButtonLeft, MouseButtonMaskLeft},
		{MouseButtonRight, MouseButtonMaskRight},
		{MouseButtonMiddle, MouseButtonMaskMiddle},
		{MouseButtonXButton1, MouseButtonMaskMbXButton1},
		{MouseButtonXButton2, MouseButtonMaskMbXButton2},
		{MouseButton(42), 0},
	}
	for _, tt := range tests {
		t.Run(tt.button.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.button.Mask())
		})
	}

	assert.Equal(t, MouseButtonMask(128), MouseButtonMaskMbXButton1)
	assert.Equal(t, MouseButtonMask(256), MouseButtonMaskMbXButton2)
	assert.Equal(t, "Left|Middle", (MouseButtonMaskLeft | MouseButtonMaskMiddle).String())

	assert.True(t, MouseButtonWheelUp.IsWheel())
	assert.True(t, MouseButtonWheelRight.IsWheel())
	assert.False(t, MouseButtonLeft.IsWheel())
}

func TestJoystick(t *testing.T) {
	assert.True(t, JoyButtonA.IsValid())
	assert.True(t, JoyButton(127).IsValid())
	assert.False(t, JoyButtonInvalid.IsValid())
	assert.False(t, JoyButtonMax.IsValid())

	assert.True(t, JoyAxisTriggerLeft.IsTrigger())
	assert.False(t, JoyAxisLeftX.IsTrigger())
	assert.True(t, JoyAxis(9).IsValid())
	assert.False(t, JoyAxisMax.IsValid())

	assert.Equal(t, "DpadLeft", JoyButtonDpadLeft.String())
}

func TestMIDIMessageFromStatus(t *testing.T) {
	tests := []struct {
		status      byte
		wantMessage MIDIMessage
		wantChannel int
	}{
		{0x93, MIDIMessageNoteOn, 3},
		{0x80, MIDIMessageNoteOff, 0},
		{0xEF, MIDIMessagePitchBend, 15},
		{0xB0, MIDIMessageControlChange, 0},
		{0xF0, MIDIMessageSystemExclusive, -1},
		{0xF8, MIDIMessageTimingClock, -1},
		{0xFF, MIDIMessageSystemReset, -1},
		{0x40, MIDIMessageNone, -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("0x%02X", tt.status), func(t *testing.T) {
			msg, ch := MIDIMessageFromStatus(tt.status)
			assert.Equal(t, tt.wantMessage, msg)
			assert.Equal(t, tt.wantChannel, ch)
		})
	}
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, Error(0), ErrorOK)
	assert.Equal(t, Error(48), ErrorPrinterOnFire)
	assert.Equal(t, Error(18), ErrorFileEOF)

	assert.NoError(t, ErrorOK.Err())
	assert.Equal(t, "ERR_FILE_NOT_FOUND", ErrorFileNotFound.Error())
	assert.Equal(t, "FileNotFound", ErrorFileNotFound.String())
	assert.Equal(t, "FAILED", ErrorFailed.Error())

	wrapped := fmt.Errorf("load scene: %w", ErrorFileCorrupt.Err())
	assert.True(t, errors.Is(wrapped, ErrorFileCorrupt))
	assert.False(t, errors.Is(wrapped, ErrorFileNotFound))

	var code Error
	require.True(t, errors.As(wrapped, &code))
	assert.Equal(t, ErrorFileCorrupt, code)
}

func TestVariant(t *testing.T) {
	assert.Equal(t, VariantType(0), VariantTypeNil)
	assert.Equal(t, VariantType(28), VariantTypeArray)
	assert.Equal(t, VariantType(38), VariantTypePackedVector4Array)
	assert.Equal(t, "PackedVector4Array", VariantTypePackedVector4Array.String())

	assert.True(t, VariantTypePackedByteArray.IsPackedArray())
	assert.True(t, VariantTypePackedVector4Array.IsPackedArray())
	assert.False(t, VariantTypeArray.IsPackedArray())
	assert.False(t, VariantTypeMax.IsPackedArray())

	v, err := VariantTypeEnum.Lookup("TYPE_STRING_NAME")
	require.NoError(t, err)
	assert.Equal(t, VariantTypeStringName, v)

	assert.Equal(t, VariantOperator(24), OpIn)
	assert.True(t, OpNot.IsUnary())
	assert.True(t, OpNegate.IsUnary())
	assert.False(t, OpAdd.IsUnary())
}

func TestMethodFlags(t *testing.T) {
	assert.Equal(t, MethodFlagNormal, MethodFlagDefault)
	assert.Equal(t, []string{"Normal", "Default"}, MethodFlagsEnum.Names(1))
	assert.Equal(t, "Normal|Const|Virtual", (MethodFlagDefault | MethodFlagConst | MethodFlagVirtual).String())
}

func TestLayout(t *testing.T) {
	assert.Equal(t, SideRight, SideLeft.Opposite())
	assert.Equal(t, SideBottom, SideTop.Opposite())
	assert.Equal(t, SideTop, SideBottom.Opposite())

	assert.Equal(t, "Vertical", Vertical.String())
	assert.Equal(t, Orientation(0), Horizontal)
	v, err := OrientationEnum.Lookup("HORIZONTAL")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, v)

	assert.Equal(t, "ZYX", EulerOrderZYX.String())
	assert.Equal(t, "BottomLeft", CornerBottomLeft.String())
}

func TestParseKeycode(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"A", int64(KeyA)},
		{"escape", int64(KeyEscape)},
		{"Shift+Ctrl+S", KeyS.WithModifiers(KeyMaskShift | KeyMaskCtrl)},
		{"KEY_MASK_CTRL + KEY_S", KeyS.WithModifiers(KeyMaskCtrl)},
		{"CmdOrCtrl+Q", KeyQ.WithModifiers(KeyMaskCmdOrCtrl)},
		{"Ctrl++", KeyPlus.WithModifiers(KeyMaskCtrl)},
		{"+", int64(KeyPlus)},
		{"Alt+F4", KeyF4.WithModifiers(KeyMaskAlt)},
		{"Shift+None", int64(KeyMaskShift)},
		{"Shift", int64(KeyShift)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKeycode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "Ctrl+", "Hyperdrive+A", "CodeMask+A", "ModifierMask+A", "Shift+Nope"} {
		_, err := ParseKeycode(bad)
		assert.ErrorIs(t, err, ErrUnknownSymbol, bad)
	}

	// every rendering parses back to the same code
	for _, code := range []int64{
		int64(KeyEnter),
		KeyA.WithModifiers(KeyMaskShift | KeyMaskAlt | KeyMaskMeta),
		KeyF12.WithModifiers(KeyMaskCmdOrCtrl | KeyMaskCtrl | KeyMaskKpad | KeyMaskGroupSwitch),
	} {
		got, err := ParseKeycode(KeycodeString(code))
		require.NoError(t, err)
		assert.Equal(t, code, got)
	}

	// modifier-only codes render without a key and read back as the modifier key
	assert.Equal(t, "Shift", KeycodeString(int64(KeyMaskShift)))
	got, err := ParseKeycode(KeycodeString(int64(KeyMaskShift)))
	require.NoError(t, err)
	assert.Equal(t, int64(KeyShift), got)
}

func TestPropertyHintEnumeration(t *testing.T) {
	assert.Equal(t, PropertyHint(2), PropertyHintEnumeration)
	assert.Equal(t, "Enum", PropertyHintEnum.NameOf(PropertyHintEnumeration))
	assert.Equal(t, "Enum", PropertyHintEnumeration.String())

	h, err := PropertyHintEnum.Lookup("PROPERTY_HINT_ENUM")
	require.NoError(t, err)
	assert.Equal(t, PropertyHintEnumeration, h)
}
