package hash

import "testing"

func TestSHA256Hasher_HashBytes(t *testing.T) {
	hasher := NewSHA256Hasher()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"text", []byte("hello world"), "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasher.HashBytes(tt.data); got != tt.want {
				t.Errorf("HashBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFakeHasher(t *testing.T) {
	hasher := NewFakeHasher("fixed")
	if got := hasher.HashBytes([]byte("anything")); got != "fixed" {
		t.Errorf("HashBytes() = %v, want fixed", got)
	}
}
