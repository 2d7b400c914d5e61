package marc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Run("full field", func(t *testing.T) {
		f := ParseField("852_0 $$a NBC $$b BC001 $$c FOLIO $$h N620 .F6 $$i A85 $$k FOLIO")
		require.NotNil(t, f)

		assert.Equal(t, "", f.Indicator1)
		assert.Equal(t, "0", f.Indicator2)
		assert.Equal(t, "NBC", f.Subfield("a"))
		assert.Equal(t, "BC001", f.Subfield("b"))
		assert.Equal(t, "N620 .F6", f.Subfield("h"))
		assert.Equal(t, "A85", f.Subfield("i"))
		assert.Equal(t, "FOLIO", f.Subfield("k"))
		assert.Equal(t, []string{"a", "b", "c", "h", "i", "k"}, f.Codes)
	})

	t.Run("digit indicators", func(t *testing.T) {
		f := ParseField("85201 $$h QA76.73 $$i .P98")
		require.NotNil(t, f)
		assert.Equal(t, "0", f.Indicator1)
		assert.Equal(t, "1", f.Indicator2)
	})

	t.Run("blank markers collapse", func(t *testing.T) {
		for _, raw := range []string{"852__ $$h QA76", "852## $$h QA76"} {
			f := ParseField(raw)
			require.NotNil(t, f)
			assert.Equal(t, "", f.Indicator1)
			assert.Equal(t, "", f.Indicator2)
			assert.Equal(t, "QA76", f.Subfield("h"))
		}
	})

	t.Run("repeated code joins values in order", func(t *testing.T) {
		f := ParseField("8520_ $$h QA76 $$h .D343 $$i 1998")
		require.NotNil(t, f)
		assert.Equal(t, "QA76 .D343", f.Subfield("h"))
		assert.Equal(t, []string{"h", "i"}, f.Codes)
	})

	t.Run("uppercase codes are lowered", func(t *testing.T) {
		f := ParseField("852_0 $$H QA76 $$I .B3")
		require.NotNil(t, f)
		assert.Equal(t, "QA76", f.Subfield("h"))
		assert.Equal(t, ".B3", f.Subfield("i"))
	})

	t.Run("no indicator prefix still yields subfields", func(t *testing.T) {
		f := ParseField("$$h QA76.9 $$i .A25")
		require.NotNil(t, f)
		assert.Equal(t, "", f.Indicator1)
		assert.Equal(t, "QA76.9", f.Subfield("h"))
	})

	t.Run("empty input is absent", func(t *testing.T) {
		assert.Nil(t, ParseField(""))
		assert.Nil(t, ParseField("   "))
	})

	t.Run("missing subfield reads empty", func(t *testing.T) {
		f := ParseField("852_0 $$h QA76")
		require.NotNil(t, f)
		assert.Equal(t, "", f.Subfield("j"))
	})
}
