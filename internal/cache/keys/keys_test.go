package keys

import (
	"regexp"
	"testing"
)

func TestDeterminism_SameInputsSameKey(t *testing.T) {
	k1 := Key("wkt", []byte("POINT (10 20)"))
	k2 := Key("wkt", []byte("POINT (10 20)"))
	if k1 != k2 {
		t.Fatalf("determinism failed:\n k1=%s\n k2=%s", k1, k2)
	}
	if !regexp.MustCompile(`^geom:wkt:d=[0-9a-f]{16}$`).MatchString(k1) {
		t.Fatalf("unexpected key shape: %s", k1)
	}
}

func TestNormalization_WhitespaceVariantsProduceSameKey(t *testing.T) {
	k1 := Key("wkt", []byte("  POINT   (10   20)\n"))
	k2 := Key("wkt", []byte("POINT (10 20)"))
	if k1 != k2 {
		t.Fatalf("normalized keys differ:\n k1=%s\n k2=%s", k1, k2)
	}
}

func TestDifference_PayloadAndFormatBothMatter(t *testing.T) {
	base := Key("wkt", []byte("POINT (10 20)"))
	if Key("wkt", []byte("POINT (10 21)")) == base {
		t.Fatalf("different payloads must produce different keys")
	}
	if Key("esrijson", []byte("POINT (10 20)")) == base {
		t.Fatalf("different formats must produce different keys")
	}
}
