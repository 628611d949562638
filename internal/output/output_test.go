package output

import (
	"bytes"
	"testing"
)

type fakeClipboard struct {
	copied []string
}

func (c *fakeClipboard) Copy(text string) error {
	c.copied = append(c.copied, text)
	return nil
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "print", want: ModePrint},
		{input: "copy", want: ModeCopy},
		{input: "", want: ModePrint},
		{input: "exec", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDeliver(t *testing.T) {
	var buf bytes.Buffer
	clip := &fakeClipboard{}
	sink := NewSink(&buf).WithClipboard(clip)

	if err := sink.Deliver("printed", ModePrint); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sink.Deliver("copied", ModeCopy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "printed\n" {
		t.Errorf("expected printed output, got %q", buf.String())
	}
	if len(clip.copied) != 1 || clip.copied[0] != "copied" {
		t.Errorf("expected one copied text, got %v", clip.copied)
	}
}
