package common

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testColor int64

const (
	testRed testColor = iota
	testGreen
	testBlue
)

func newTestColors(t *testing.T) *Enum[testColor] {
	t.Helper()
	e, err := NewEnum("Color", []Member[testColor]{
		{Name: "Red", EngineName: "COLOR_RED", Value: testRed},
		{Name: "Green", EngineName: "COLOR_GREEN", Value: testGreen},
		{Name: "Blue", EngineName: "COLOR_BLUE", Value: testBlue},
		{Name: "Primary", EngineName: "COLOR_PRIMARY", Value: testRed, Alias: true},
	})
	require.NoError(t, err)
	return e
}

func TestEnumLookup(t *testing.T) {
	e := newTestColors(t)

	tests := []struct {
		name    string
		symbol  string
		want    testColor
		wantErr bool
	}{
		{name: "go name", symbol: "Green", want: testGreen},
		{name: "engine name", symbol: "COLOR_BLUE", want: testBlue},
		{name: "lower case", symbol: "color_blue", want: testBlue},
		{name: "mixed case go name", symbol: "gReEn", want: testGreen},
		{name: "surrounding spaces", symbol: "  Red ", want: testRed},
		{name: "alias", symbol: "Primary", want: testRed},
		{name: "unknown", symbol: "Purple", wantErr: true},
		{name: "empty", symbol: "", wantErr: true},
		{name: "prefix only", symbol: "COLOR_", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Lookup(tt.symbol)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSymbol)
				assert.Contains(t, err.Error(), "Color")
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumNames(t *testing.T) {
	e := newTestColors(t)

	assert.Equal(t, []string{"Red", "Primary"}, e.Names(testRed))
	assert.Equal(t, []string{"Blue"}, e.Names(testBlue))
	assert.Empty(t, e.Names(42))

	assert.Equal(t, "Red", e.NameOf(testRed))
	assert.Equal(t, "COLOR_RED", e.EngineNameOf(testRed))
	assert.Equal(t, "Color(42)", e.NameOf(42))
	assert.Equal(t, "Color(42)", e.EngineNameOf(42))

	assert.True(t, e.Contains(testGreen))
	assert.False(t, e.Contains(-1))
}

func TestEnumRoundTrip(t *testing.T) {
	e := newTestColors(t)
	for _, m := range e.Members() {
		for _, name := range e.Names(m.Value) {
			v, err := e.Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, m.Value, v, "round trip through %s", name)
		}
	}
}

func TestEnumMembersIsACopy(t *testing.T) {
	e := newTestColors(t)
	members := e.Members()
	members[0].Name = "Changed"
	assert.Equal(t, "Red", e.Members()[0].Name)
	assert.Equal(t, "Red", e.NameOf(testRed))
}

func TestEnumFlags(t *testing.T) {
	e, err := NewEnum("Perm", []Member[int64]{
		{Name: "None", EngineName: "PERM_NONE", Value: 0},
		{Name: "Read", EngineName: "PERM_READ", Value: 1},
		{Name: "Write", EngineName: "PERM_WRITE", Value: 2},
		{Name: "Exec", EngineName: "PERM_EXEC", Value: 4},
		{Name: "ReadWrite", EngineName: "PERM_READ_WRITE", Value: 3, Composite: true},
	}, AsFlags())
	require.NoError(t, err)
	assert.True(t, e.IsFlags())

	t.Run("format exact member", func(t *testing.T) {
		assert.Equal(t, "ReadWrite", e.Format(3))
		assert.Equal(t, "PERM_READ_WRITE", e.FormatEngine(3))
		assert.Equal(t, "None", e.Format(0))
	})

	t.Run("format decomposes", func(t *testing.T) {
		assert.Equal(t, "Read|Exec", e.Format(5))
		assert.Equal(t, "PERM_READ|PERM_EXEC", e.FormatEngine(5))
	})

	t.Run("format keeps unknown bits", func(t *testing.T) {
		assert.Equal(t, "Write|0x10", e.Format(2|16))
		assert.Equal(t, "0x40", e.Format(64))
	})

	t.Run("parse", func(t *testing.T) {
		v, err := e.Parse("Read | PERM_EXEC")
		require.NoError(t, err)
		assert.Equal(t, int64(5), v)

		v, err = e.Parse("ReadWrite|Exec")
		require.NoError(t, err)
		assert.Equal(t, int64(7), v)

		_, err = e.Parse("Read|Delete")
		assert.ErrorIs(t, err, ErrUnknownSymbol)

		_, err = e.Parse("Read|")
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("has", func(t *testing.T) {
		v := int64(1 | 4)
		assert.True(t, Has(v, 1))
		assert.True(t, Has(v, 4))
		assert.False(t, Has(v, 2))
		assert.False(t, Has(v, 3))
	})
}

func TestEnumNonFlagsParse(t *testing.T) {
	e := newTestColors(t)

	v, err := e.Parse("Blue")
	require.NoError(t, err)
	assert.Equal(t, testBlue, v)

	_, err = e.Parse("Red|Blue")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Equal(t, "Color(7)", e.Format(7))
}

func TestEnumMax(t *testing.T) {
	e, err := NewEnum("Slot", []Member[int64]{
		{Name: "First", EngineName: "SLOT_FIRST", Value: 0},
		{Name: "Second", EngineName: "SLOT_SECOND", Value: 1},
		{Name: "Count", EngineName: "SLOT_COUNT", Value: 2, Sentinel: true},
		{Name: "Max", EngineName: "SLOT_MAX", Value: 16, Sentinel: true},
	})
	require.NoError(t, err)

	limit, ok := e.Max()
	assert.True(t, ok)
	assert.Equal(t, int64(16), limit)

	_, ok = newTestColors(t).Max()
	assert.False(t, ok)
}

func TestNewEnumRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		members []Member[int64]
		options []EnumBuilderOption
		catName string
	}{
		{
			name:    "empty category name",
			catName: "",
			members: []Member[int64]{{Name: "A", EngineName: "A", Value: 0}},
		},
		{
			name:    "no members",
			catName: "Empty",
		},
		{
			name:    "empty member name",
			catName: "Bad",
			members: []Member[int64]{{Name: "", EngineName: "BAD_A", Value: 0}},
		},
		{
			name:    "name collision across members",
			catName: "Bad",
			members: []Member[int64]{
				{Name: "A", EngineName: "BAD_A", Value: 0},
				{Name: "bad_a", EngineName: "BAD_B", Value: 1},
			},
		},
		{
			name:    "unmarked alias",
			catName: "Bad",
			members: []Member[int64]{
				{Name: "A", EngineName: "BAD_A", Value: 0},
				{Name: "B", EngineName: "BAD_B", Value: 0},
			},
		},
		{
			name:    "flags member with several bits",
			catName: "Bad",
			members: []Member[int64]{
				{Name: "A", EngineName: "BAD_A", Value: 1},
				{Name: "B", EngineName: "BAD_B", Value: 6},
			},
			options: []EnumBuilderOption{AsFlags()},
		},
		{
			name:    "member above sentinel",
			catName: "Bad",
			members: []Member[int64]{
				{Name: "A", EngineName: "BAD_A", Value: 0},
				{Name: "Max", EngineName: "BAD_MAX", Value: 5, Sentinel: true},
				{Name: "B", EngineName: "BAD_B", Value: 5, Alias: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEnum(tt.catName, tt.members, tt.options...)
			assert.ErrorIs(t, err, ErrInvalidEnum)
			assert.Nil(t, e)
		})
	}
}

func TestMustEnumPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustEnum("Bad", []Member[int64]{
			{Name: "A", EngineName: "BAD_A", Value: 0},
			{Name: "B", EngineName: "BAD_B", Value: 0},
		})
	})
}

func TestEnumConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				v, err := KeyEnum.Lookup("key_escape")
				assert.NoError(t, err)
				assert.Equal(t, KeyEscape, v)
				assert.Equal(t, "Shift|Ctrl", KeyModifierMaskEnum.Format(KeyMaskShift|KeyMaskCtrl))
			}
		}()
	}
	wg.Wait()
}
