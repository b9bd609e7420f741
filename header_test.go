package yaz0

import (
	"bytes"
	"errors"
	"runtime"
	"testing"
)

func TestHeaderSizeIsBigEndian(t *testing.T) {
	enc, err := Compress(make([]byte, 300), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{'Y', 'a', 'z', '0', 0x00, 0x00, 0x01, 0x2C, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(enc[:HeaderSize], want) {
		t.Fatalf("header = % x, want % x", enc[:HeaderSize], want)
	}
}

func TestAppendAndPutHeaderAgree(t *testing.T) {
	appended := AppendHeader(nil, 0x01020304)

	put := bytes.Repeat([]byte{0xFF}, HeaderSize)
	PutHeader(put, 0x01020304)

	if !bytes.Equal(appended, put) {
		t.Fatalf("AppendHeader = % x, PutHeader = % x", appended, put)
	}

	h, err := ReadHeader(put)
	if err != nil {
		t.Fatal(err)
	}
	if h.UncompressedSize != 0x01020304 {
		t.Fatalf("size = %#x", h.UncompressedSize)
	}
}

func TestReadHeaderErrors(t *testing.T) {
	cases := map[string][]byte{
		"empty":     nil,
		"short":     []byte("Ya"),
		"bad magic": []byte("Yaz1\x00\x00\x00\x01\x00\x00\x00\x00\x00\x00\x00\x00"),
		"lowercase": []byte("yaz0\x00\x00\x00\x01\x00\x00\x00\x00\x00\x00\x00\x00"),
		"truncated": []byte("Yaz0\x00\x00\x00\x01"),
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadHeader(src); !errors.Is(err, ErrFormat) {
				t.Fatalf("want ErrFormat, got %v", err)
			}
		})
	}
}

func TestIsYaz0(t *testing.T) {
	if !IsYaz0([]byte("Yaz0")) {
		t.Fatal("magic alone should be recognized")
	}
	if IsYaz0([]byte("Yay0....")) {
		t.Fatal("Yay0 is not Yaz0")
	}
	if IsYaz0(nil) {
		t.Fatal("nil is not Yaz0")
	}
}

func TestHeaderBinaryMarshaler(t *testing.T) {
	raw, err := Header{UncompressedSize: 300}.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != HeaderSize {
		t.Fatalf("len = %d", len(raw))
	}

	var h Header
	if err := h.UnmarshalBinary(raw); err != nil {
		t.Fatal(err)
	}
	if h.UncompressedSize != 300 {
		t.Fatalf("size = %d", h.UncompressedSize)
	}

	if err := h.UnmarshalBinary([]byte("nope")); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}

func TestDecompressBadMagicAllocatesNothing(t *testing.T) {
	// Declares a 2 GiB payload; the output buffer must not be made before the magic check.
	src := []byte("Yaz1\x7F\xFF\xFF\xFF\x00\x00\x00\x00\x00\x00\x00\x00")

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := Decompress(src)
	runtime.ReadMemStats(&after)

	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
	if grown := after.TotalAlloc - before.TotalAlloc; grown > 1<<20 {
		t.Fatalf("allocated %d bytes on a rejected header", grown)
	}
}
