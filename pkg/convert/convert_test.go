// pkg/convert/convert_test.go
package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/model"
)

func newTestConverter() *Converter {
	return NewConverter(zap.NewNop())
}

func TestBoolean(t *testing.T) {
	c := newTestConverter()
	ref := FieldRef{Table: "WorkOrder", Column: "RushOrder", RowID: "W-1"}

	t.Run("truthy tokens", func(t *testing.T) {
		for _, raw := range []string{"1", "YES", "Y", "TRUE", "T", "yes", "y", "true", "t", " Y ", "Yes"} {
			outcome := c.Boolean(raw, ref)
			require.Equal(t, StatusConverted, outcome.Status, "raw=%q", raw)
			assert.Equal(t, true, outcome.Value, "raw=%q", raw)
		}
	})

	t.Run("falsy tokens", func(t *testing.T) {
		for _, raw := range []string{"0", "NO", "N", "FALSE", "F", "no", "n", "false", "f", " n "} {
			outcome := c.Boolean(raw, ref)
			require.Equal(t, StatusConverted, outcome.Status, "raw=%q", raw)
			assert.Equal(t, false, outcome.Value, "raw=%q", raw)
		}
	})

	t.Run("empty is null", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			outcome := c.Boolean(raw, ref)
			assert.Equal(t, StatusNullEmpty, outcome.Status, "raw=%q", raw)
			assert.Nil(t, outcome.Value)
		}
	})

	t.Run("anything else is null and unrecognized", func(t *testing.T) {
		for _, raw := range []string{"maybe", "2", "ON", "OFF", "YEP"} {
			outcome := c.Boolean(raw, ref)
			assert.Equal(t, StatusNullUnrecognized, outcome.Status, "raw=%q", raw)
			assert.Nil(t, outcome.Value)
		}
	})
}

func TestDate(t *testing.T) {
	c := newTestConverter()
	ref := FieldRef{Table: "WorkOrder", Column: "DateIn", RowID: "W-1"}

	t.Run("invalid sentinels are null", func(t *testing.T) {
		for _, raw := range []string{"0000-00-00", "00/00/00", "00/00/0000"} {
			outcome := c.Date(raw, ref)
			assert.Equal(t, StatusNullEmpty, outcome.Status, "raw=%q", raw)
		}
	})

	t.Run("iso date", func(t *testing.T) {
		outcome := c.Date("2024-01-15", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		got := outcome.Value.(time.Time)
		assert.True(t, got.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)), "got %v", got)
	})

	t.Run("date variant truncates time of day", func(t *testing.T) {
		outcome := c.Date("01/15/24 14:30:00", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		got := outcome.Value.(time.Time)
		assert.True(t, got.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)), "got %v", got)
	})

	t.Run("slash formats", func(t *testing.T) {
		for _, raw := range []string{"01/15/2024", "01/15/24"} {
			outcome := c.Date(raw, ref)
			require.Equal(t, StatusConverted, outcome.Status, "raw=%q", raw)
			got := outcome.Value.(time.Time)
			assert.True(t, got.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)), "raw=%q got %v", raw, got)
		}
	})

	t.Run("garbage is null and unrecognized", func(t *testing.T) {
		outcome := c.Date("next tuesday-ish", ref)
		assert.Equal(t, StatusNullUnrecognized, outcome.Status)
		assert.Nil(t, outcome.Value)
	})
}

func TestDateTime(t *testing.T) {
	c := newTestConverter()
	ref := FieldRef{Table: "WorkOrder", Column: "DateIn", RowID: "W-1"}

	t.Run("preserves time of day", func(t *testing.T) {
		outcome := c.DateTime("01/15/24 14:30:00", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		got := outcome.Value.(time.Time)
		assert.True(t, got.Equal(time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC)), "got %v", got)
	})

	t.Run("iso datetime", func(t *testing.T) {
		outcome := c.DateTime("2024-01-15T14:30:00", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		got := outcome.Value.(time.Time)
		assert.True(t, got.Equal(time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC)), "got %v", got)
	})

	t.Run("empty is null", func(t *testing.T) {
		outcome := c.DateTime("", ref)
		assert.Equal(t, StatusNullEmpty, outcome.Status)
	})
}

func TestInteger(t *testing.T) {
	c := newTestConverter()
	ref := FieldRef{Table: "WorkOrder", Column: "Quantity", RowID: "W-1"}

	t.Run("plain integer", func(t *testing.T) {
		outcome := c.Integer("42", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, int64(42), outcome.Value)
	})

	t.Run("float-encoded integer", func(t *testing.T) {
		outcome := c.Integer("5.0", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, int64(5), outcome.Value)
	})

	t.Run("thousands separators", func(t *testing.T) {
		outcome := c.Integer("1,200", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, int64(1200), outcome.Value)
	})

	t.Run("residue is null and unrecognized", func(t *testing.T) {
		for _, raw := range []string{"many", "12 pcs", "1..2"} {
			outcome := c.Integer(raw, ref)
			assert.Equal(t, StatusNullUnrecognized, outcome.Status, "raw=%q", raw)
		}
	})
}

func TestDecimal(t *testing.T) {
	c := newTestConverter()
	ref := FieldRef{Table: "WorkOrder", Column: "Price", RowID: "W-1"}

	t.Run("currency formatting stripped", func(t *testing.T) {
		outcome := c.Decimal("$1,234.56", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, 1234.56, outcome.Value)
	})

	t.Run("rounded to two places", func(t *testing.T) {
		outcome := c.Decimal("10.005", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.InDelta(t, 10.0, outcome.Value.(float64), 0.011)

		outcome = c.Decimal("99.999", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, 100.0, outcome.Value)
	})

	t.Run("plain number", func(t *testing.T) {
		outcome := c.Decimal("7.5", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, 7.5, outcome.Value)
	})

	t.Run("residue is null and unrecognized", func(t *testing.T) {
		outcome := c.Decimal("$n/a", ref)
		assert.Equal(t, StatusNullUnrecognized, outcome.Status)
	})
}

func TestConvertDispatch(t *testing.T) {
	c := newTestConverter()
	ref := FieldRef{Table: "Customer", Column: "MailList", RowID: "7"}

	t.Run("string columns copy verbatim", func(t *testing.T) {
		outcome := c.Convert(model.KindString, "  W-10215  ", ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, "  W-10215  ", outcome.Value)
	})

	t.Run("nil is null for every kind", func(t *testing.T) {
		for _, kind := range []model.Kind{
			model.KindString, model.KindBoolean, model.KindDate,
			model.KindDateTime, model.KindInteger, model.KindDecimal,
		} {
			outcome := c.Convert(kind, nil, ref)
			assert.Equal(t, StatusNullEmpty, outcome.Status, "kind=%s", kind)
			assert.Nil(t, outcome.Value, "kind=%s", kind)
		}
	})

	t.Run("byte slices are treated as text", func(t *testing.T) {
		outcome := c.Convert(model.KindBoolean, []byte("Y"), ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, true, outcome.Value)
	})

	t.Run("driver-typed values are stringified first", func(t *testing.T) {
		outcome := c.Convert(model.KindInteger, int64(12), ref)
		require.Equal(t, StatusConverted, outcome.Status)
		assert.Equal(t, int64(12), outcome.Value)
	})
}

func TestRaw(t *testing.T) {
	assert.Equal(t, "", Raw(nil))
	assert.Equal(t, "abc", Raw("abc"))
	assert.Equal(t, "abc", Raw([]byte("abc")))
	assert.Equal(t, "42", Raw(int64(42)))
}
