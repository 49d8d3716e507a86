package fonts

import "testing"

func TestLoadDefaultFonts(t *testing.T) {
	LoadDefaultFonts(10)

	for _, name := range []FontName{HUD, HUDSmall, Title} {
		if !Loaded(name) {
			t.Fatalf("Expected font %s to be loaded", name)
		}
		if name.Get() == nil {
			t.Fatalf("Expected a face for %s", name)
		}
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	LoadFont("garbage", []byte("not a font"))
	if Loaded("garbage") {
		t.Fatal("Expected unparseable data to be skipped")
	}
}
