package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"english title", "Al Faisaliah Tower Renovation", "al-faisaliah-tower-renovation"},
		{"arabic title", "تجديد برج الفيصلية", "تجديد-برج-الفيصلية"},
		{"punctuation collapses", "  Health & Safety -- Policy!! ", "health-safety-policy"},
		{"digits kept", "500+ Projects", "500-projects"},
		{"compatibility forms folded", "ﬁber Works", "fiber-works"},
		{"arabic diacritics dropped", "مَشْرُوع جديد", "مشروع-جديد"},
		{"empty", "", ""},
		{"only separators", " - / ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}
