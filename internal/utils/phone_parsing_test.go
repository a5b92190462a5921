package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *PhoneComponents
		wantErr bool
	}{
		{
			name:  "national mobile with mask",
			input: "(73) 99999-9999",
			want:  &PhoneComponents{DDI: "55", DDD: "73", Valor: "999999999", Full: "+5573999999999"},
		},
		{
			name:  "international prefix",
			input: "+55 73 99999-9999",
			want:  &PhoneComponents{DDI: "55", DDD: "73", Valor: "999999999", Full: "+5573999999999"},
		},
		{
			name:  "landline",
			input: "(73) 3525-1234",
			want:  &PhoneComponents{DDI: "55", DDD: "73", Valor: "35251234", Full: "+557335251234"},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "too short", input: "9999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhoneNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/5573999999999", WhatsAppLink("(73) 99999-9999"))
	assert.Equal(t, "", WhatsAppLink("not a phone"))
}
