package domain_test

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
)

// mockScanner feeds data positionally into Scan destinations
type mockScanner struct {
	data []interface{}
	err  error
}

func (m *mockScanner) Scan(dest ...interface{}) error {
	if m.err != nil {
		return m.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case sql.Scanner:
			if err := v.Scan(m.data[i]); err != nil {
				return err
			}
		case *string:
			*v = m.data[i].(string)
		case *int:
			*v = m.data[i].(int)
		case *bool:
			*v = m.data[i].(bool)
		case *time.Time:
			*v = m.data[i].(time.Time)
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.StringList
	}{
		{"array", `["Go", " React ", ""]`, domain.StringList{"Go", "React"}},
		{"csv", `"PHP, MySQL ,, Laravel"`, domain.StringList{"PHP", "MySQL", "Laravel"}},
		{"empty string", `""`, domain.StringList{}},
		{"null", `null`, domain.StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l domain.StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &l))
			assert.Equal(t, tt.want, l)
		})
	}

	var l domain.StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestStringList_MarshalJSON(t *testing.T) {
	var l domain.StringList
	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))

	out, err = json.Marshal(domain.StringList{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(out))
}

func TestStringList_ScanAndValue(t *testing.T) {
	var l domain.StringList
	require.NoError(t, l.Scan([]byte(`{Next.js,Supabase}`)))
	assert.Equal(t, domain.StringList{"Next.js", "Supabase"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, domain.StringList{}, l)

	v, err := domain.StringList{"Go", "SQL"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"Go","SQL"}`, v)

	v, err = domain.StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `{}`, v)
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, domain.OptionalString(nil))
	assert.Nil(t, domain.OptionalString(strPtr("   ")))
	assert.Equal(t, "x", *domain.OptionalString(strPtr(" x ")))
}

func TestReorderRequest_Validate(t *testing.T) {
	assert.Error(t, (&domain.ReorderRequest{}).Validate())
	assert.Error(t, (&domain.ReorderRequest{IDs: []string{"a", ""}}).Validate())
	assert.Error(t, (&domain.ReorderRequest{IDs: []string{"a", "b", "a"}}).Validate())
	assert.NoError(t, (&domain.ReorderRequest{IDs: []string{"a", "b"}}).Validate())
}

func TestIDRequest_Validate(t *testing.T) {
	req := &domain.IDRequest{ID: "  abc "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "abc", req.ID)

	err := (&domain.IDRequest{}).Validate()
	assert.True(t, domain.IsValidationError(err))
}
