package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_And_Format(t *testing.T) {
	d, err := Parse("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", d.String())

	// 带时间的输入只取日期部分
	d, err = Parse("2026-09-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", d.String())

	_, err = Parse("not-a-date")
	assert.Error(t, err)
}

func Test_JSON_Roundtrip(t *testing.T) {
	d, err := Parse("2025-01-31")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-31"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)

	var zero Date
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	require.NoError(t, json.Unmarshal([]byte("null"), &back))
	assert.True(t, back.IsZero())
}

func Test_Scan_Value(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-02-29"))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 3, 1, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "2024-03-01", d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", v)

	var zero Date
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, d.Scan(42))
}

func Test_AddDays_Before(t *testing.T) {
	d, _ := Parse("2026-01-20")
	assert.Equal(t, "2026-02-03", d.AddDays(14).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.AddDays(1).Before(d))
}
