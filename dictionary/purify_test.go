package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var purifyCases = []struct {
	in, want string
}{
	{"勉強する", "勉強"},
	{"勉強します。", "勉強"},
	{"勉強をする", "勉強"},
	{"する", "する"},
	{"食べる (to eat)", "食べる"},
	{"「猫」", "猫"},
	{"ラーメン", "ラーメン"},
	{"人々", "人々"},
	{"", ""},
}

func TestPurify(t *testing.T) {
	for _, tt := range purifyCases {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Purify(tt.in))
		})
	}
}

func TestPurifyIdempotent(t *testing.T) {
	for _, tt := range purifyCases {
		once := Purify(tt.in)
		assert.Equal(t, once, Purify(once), tt.in)
	}
}

func TestPurifierCaches(t *testing.T) {
	p, err := NewPurifier(4)
	require.NoError(t, err)

	assert.Equal(t, "勉強", p.Purify("勉強する"))
	assert.Equal(t, "勉強", p.Purify("勉強する"))
	assert.Equal(t, 1, p.Len())

	p.Reset()
	assert.Equal(t, 0, p.Len())
}

func TestNewPurifierClampsSize(t *testing.T) {
	p, err := NewPurifier(0)
	require.NoError(t, err)
	assert.Equal(t, "猫", p.Purify("猫"))
}
