package simd

import "testing"

func TestIsASCIIEmpty(t *testing.T) {
	if !IsASCII(nil) {
		t.Fatal("empty slice is trivially ASCII")
	}
}

func TestIsASCIIAllASCII(t *testing.T) {
	if !IsASCII([]byte("hello world, this is a plain ASCII sentence.")) {
		t.Fatal("expected all-ASCII input to report true")
	}
}

func TestIsASCIIRejectsHighBit(t *testing.T) {
	data := []byte("hello world")
	data = append(data, 0x80)
	if IsASCII(data) {
		t.Fatal("expected a byte >= 0x80 to fail IsASCII")
	}
}

func TestIsASCIIRejectsAtEveryPosition(t *testing.T) {
	for i := 0; i < 40; i++ {
		data := make([]byte, 40)
		for j := range data {
			data[j] = 'a'
		}
		data[i] = 0xff
		if IsASCII(data) {
			t.Fatalf("expected failure with high-bit byte at index %d", i)
		}
	}
}

func TestIsASCIIBoundaryLengths(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 31, 32, 33, 63, 64, 65} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte('a' + i%26)
		}
		if !IsASCII(data) {
			t.Fatalf("length %d: expected pure-ASCII buffer to pass", n)
		}
	}
}

// isASCIINaive is the byte-by-byte definition IsASCII must agree with,
// independent of stride or build tag.
func isASCIINaive(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

func TestIsASCIIAgreesWithNaiveReference(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 31, 32, 33, 63, 64, 65, 100} {
		for badPos := -1; badPos < n; badPos++ {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte('a' + i%26)
			}
			if badPos >= 0 {
				data[badPos] = 0x80 + byte(badPos%0x7f)
			}
			if got, want := IsASCII(data), isASCIINaive(data); got != want {
				t.Fatalf("length %d badPos %d: IsASCII = %v, want %v", n, badPos, got, want)
			}
		}
	}
}
