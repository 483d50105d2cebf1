package link

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/notelink/pkg/models"
)

func settingsWith(extract bool, length int, appendName bool) models.LinkSettings {
	s := models.DefaultLinkSettings()
	s.ExtractTimestamps = extract
	s.TimestampLength = length
	s.AppendFileName = appendName
	return s
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		basename string
		settings models.LinkSettings
		want     string
	}{
		{
			name:     "timestamp with title",
			basename: "202512270824 Christmas Traditions",
			settings: settingsWith(true, 12, true),
			want:     "[[202512270824]] Christmas Traditions",
		},
		{
			name:     "no timestamp prefix",
			basename: "Project Ideas",
			settings: settingsWith(true, 12, true),
			want:     "[[Project Ideas]]",
		},
		{
			name:     "timestamp only",
			basename: "202512270824",
			settings: settingsWith(true, 12, true),
			want:     "[[202512270824]]",
		},
		{
			name:     "append disabled drops the title",
			basename: "202512270824 Notes",
			settings: settingsWith(true, 12, false),
			want:     "[[202512270824]]",
		},
		{
			name:     "extraction disabled keeps the full basename",
			basename: "202512270824 Notes",
			settings: settingsWith(false, 12, true),
			want:     "[[202512270824 Notes]]",
		},
		{
			name:     "digit run longer than the timestamp length does not match",
			basename: "2025122708245 Notes",
			settings: settingsWith(true, 12, true),
			want:     "[[2025122708245 Notes]]",
		},
		{
			name:     "digit run shorter than the timestamp length does not match",
			basename: "20251227 Notes",
			settings: settingsWith(true, 12, true),
			want:     "[[20251227 Notes]]",
		},
		{
			name:     "timestamp not at the start does not match",
			basename: "Notes 202512270824",
			settings: settingsWith(true, 12, true),
			want:     "[[Notes 202512270824]]",
		},
		{
			name:     "timestamp followed only by whitespace",
			basename: "202512270824   ",
			settings: settingsWith(true, 12, true),
			want:     "[[202512270824]]",
		},
		{
			name:     "shorter configured length",
			basename: "20251227 Daily Log",
			settings: settingsWith(true, 8, true),
			want:     "[[20251227]] Daily Log",
		},
		{
			name:     "empty basename",
			basename: "",
			settings: settingsWith(true, 12, true),
			want:     "[[]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.basename, tt.settings))
		})
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	s := settingsWith(true, 12, true)
	first := Format("202512270824 Christmas Traditions", s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Format("202512270824 Christmas Traditions", s))
	}
}

func TestFormatNonPositiveLengthFallsBack(t *testing.T) {
	// The settings boundary rejects non-positive lengths, but the formatter
	// stays total even if one slips through.
	s := settingsWith(true, 0, true)
	assert.Equal(t, "[[whatever]]", Format("whatever", s))
}
