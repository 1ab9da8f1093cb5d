package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/andikahakim/royba/internal/models"
)

func TestCodecRoundTripUsers(t *testing.T) {
	codec := NewCodec()
	users := map[string]models.User{
		"1": {ID: "1", Username: "hakimmanager", Password: "123456", Name: "Hakim Manager", Role: models.RoleManager},
		"2": {ID: "2", Username: "hakimkaryawan", Password: "123456", Name: "Hakim Karyawan", Role: models.RoleEmployee},
	}

	encoded, err := codec.Encode(users)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	decoded := map[string]models.User{}
	if err := codec.Decode(encoded, &decoded); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(users, decoded) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, users)
	}
}

func TestCodecRoundTripOptionalFieldsAbsent(t *testing.T) {
	codec := NewCodec()
	requests := map[string]models.AuthorizationRequest{
		"r1": {
			ID:        "r1",
			UserID:    "2",
			Type:      models.RequestTypeEditChecklist,
			Status:    models.RequestStatusPending,
			Message:   "salah centang",
			CreatedAt: "2026-09-01T08:00:00Z",
		},
	}

	encoded, err := codec.Encode(requests)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	decoded := map[string]models.AuthorizationRequest{}
	if err := codec.Decode(encoded, &decoded); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(requests, decoded) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, requests)
	}
	if decoded["r1"].Response != "" || decoded["r1"].RespondedAt != "" {
		t.Fatalf("expected optional fields to stay empty, got %+v", decoded["r1"])
	}
}

func TestCodecEncodeIsSaltedPerCall(t *testing.T) {
	codec := NewCodec()
	records := map[string]models.Attendance{
		"a1": {ID: "a1", UserID: "2", Date: "2026-09-01", CheckIn: "07:05:00", Status: models.StatusLate, Shift: 1},
	}

	first, err := codec.Encode(records)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	second, err := codec.Encode(records)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ciphertexts for repeated Encode calls")
	}

	for _, encoded := range []string{first, second} {
		decoded := map[string]models.Attendance{}
		if err := codec.Decode(encoded, &decoded); err != nil {
			t.Fatalf("Decode() unexpected error: %v", err)
		}
		if !reflect.DeepEqual(records, decoded) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, records)
		}
	}
}

func TestCodecDecodeRejectsMalformedInput(t *testing.T) {
	codec := NewCodec()
	cases := []string{
		"",
		"not base64 !!!",
		"aGVsbG8=",
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	}

	for _, input := range cases {
		target := map[string]models.User{}
		if err := codec.Decode(input, &target); !errors.Is(err, ErrMalformedBlob) {
			t.Fatalf("Decode(%q) expected ErrMalformedBlob, got %v", input, err)
		}
	}
}

func TestCodecDecodeRejectsForeignPassphrase(t *testing.T) {
	users := map[string]models.User{"1": {ID: "1", Username: "x", Role: models.RoleManager}}

	encoded, err := NewCodecWithPassphrase("some-other-key").Encode(users)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	target := map[string]models.User{}
	if err := NewCodec().Decode(encoded, &target); !errors.Is(err, ErrMalformedBlob) {
		t.Fatalf("expected ErrMalformedBlob for foreign ciphertext, got %v", err)
	}
}
