package flex_test

import (
	"testing"

	"github.com/Joshua7054/FlexLayout/flex"
	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	p := flex.Point(12.5)
	require.Equal(t, flex.UnitPoint, p.Unit)
	require.Equal(t, 12.5, p.Value)

	pct := flex.Percent(40)
	require.Equal(t, flex.UnitPercent, pct.Unit)
	require.Equal(t, 40.0, pct.Value)

	require.Equal(t, flex.UnitAuto, flex.ValueAuto.Unit)
	require.Equal(t, flex.UnitUndefined, flex.ValueUndefined.Unit)
	require.True(t, flex.FloatIsUndefined(flex.ValueUndefined.Value))
}

func TestValueEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b flex.Value
		want bool
	}{
		{"same point", flex.Point(10), flex.Point(10), true},
		{"within tolerance", flex.Point(10), flex.Point(10.00001), true},
		{"outside tolerance", flex.Point(10), flex.Point(10.01), false},
		{"unit mismatch", flex.Point(10), flex.Percent(10), false},
		{"both undefined", flex.ValueUndefined, flex.ValueUndefined, true},
		{"both auto", flex.ValueAuto, flex.ValueAuto, true},
		{"auto vs undefined", flex.ValueAuto, flex.ValueUndefined, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, flex.ValueEqual(tc.a, tc.b))
		})
	}
}

func TestValueString(t *testing.T) {
	require.Equal(t, "12px", flex.Point(12).String())
	require.Equal(t, "40%", flex.Percent(40).String())
	require.Equal(t, "auto", flex.ValueAuto.String())
	require.Equal(t, "undefined", flex.ValueUndefined.String())
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "row", flex.FlexDirectionRow.String())
	require.Equal(t, "column-reverse", flex.FlexDirectionColumnReverse.String())
	require.Equal(t, "space-between", flex.JustifySpaceBetween.String())
	require.Equal(t, "stretch", flex.AlignStretch.String())
	require.Equal(t, "absolute", flex.PositionTypeAbsolute.String())
	require.Equal(t, "wrap-reverse", flex.WrapWrapReverse.String())
	require.Equal(t, "scroll", flex.OverflowScroll.String())
	require.Equal(t, "none", flex.DisplayNone.String())
	require.Equal(t, "rtl", flex.DirectionRTL.String())
	require.Equal(t, "at-most", flex.MeasureModeAtMost.String())
	require.Equal(t, "start", flex.EdgeStart.String())
}
