package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestDeviceIDStableAcrossCalls(t *testing.T) {
	dir := t.TempDir()

	first, err := DeviceID(dir)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("token %q is not a UUID: %v", first, err)
	}

	second, err := DeviceID(dir)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second != first {
		t.Fatalf("token changed across calls: %q then %q", first, second)
	}
}

func TestDeviceIDDiffersPerDevice(t *testing.T) {
	a, err := DeviceID(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	b, err := DeviceID(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two data dirs must not share a device token")
	}
}
