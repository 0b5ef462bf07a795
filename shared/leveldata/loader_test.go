package leveldata

import (
	"testing"
	"testing/fstest"
)

func TestLoadDefaultWorld(t *testing.T) {
	w, err := LoadDefaultWorld()
	if err != nil {
		t.Fatalf("LoadDefaultWorld: %v", err)
	}

	if w.Width != 320 || w.Height != 568 {
		t.Fatalf("expected 320x568 world, got %dx%d", w.Width, w.Height)
	}
	if w.Ground.Y != 456 || w.Ground.H != 112 {
		t.Fatalf("unexpected ground %+v", w.Ground)
	}
	if w.PlayableHeight() != 456 {
		t.Fatalf("expected playable height 456, got %v", w.PlayableHeight())
	}
	if w.PlayerSpawn.X != 64 || w.PlayerSpawn.Y != 262 {
		t.Fatalf("unexpected spawn %+v", w.PlayerSpawn)
	}

	for _, name := range []string{"midground", "foreground"} {
		l, ok := w.Layer(name)
		if !ok {
			t.Fatalf("missing scroll layer %q", name)
		}
		if l.Tiles != 2 {
			t.Fatalf("layer %q: expected 2 tiles, got %d", name, l.Tiles)
		}
		if l.Rect.W != 320 {
			t.Fatalf("layer %q: expected tile width 320, got %v", name, l.Rect.W)
		}
	}
	if w.Layers[0].Name != "midground" {
		t.Fatalf("layers should be ordered back to front, got %q first", w.Layers[0].Name)
	}
}

func TestLoadWorldErrors(t *testing.T) {
	const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0">`

	cases := []struct {
		name string
		tmx  string
	}{
		{
			name: "no_ground",
			tmx: header + `
 <objectgroup id="1" name="PlayerSpawn"><object id="1" x="8" y="8"><point/></object></objectgroup>
</map>`,
		},
		{
			name: "no_spawn",
			tmx: header + `
 <objectgroup id="1" name="Ground"><object id="1" x="0" y="60" width="80" height="20"/></objectgroup>
</map>`,
		},
		{
			name: "ground_outside_map",
			tmx: header + `
 <objectgroup id="1" name="Ground"><object id="1" x="0" y="200" width="80" height="20"/></objectgroup>
 <objectgroup id="2" name="PlayerSpawn"><object id="2" x="8" y="8"><point/></object></objectgroup>
</map>`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.tmx": &fstest.MapFile{Data: []byte(c.tmx)}}
			if _, err := LoadWorld(fsys, "bad.tmx"); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadWorldDefaultsSkyAndTiles(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0">
 <objectgroup id="1" name="Ground"><object id="1" x="0" y="60" width="80" height="20"/></objectgroup>
 <objectgroup id="2" name="PlayerSpawn"><object id="2" x="8" y="8"><point/></object></objectgroup>
 <objectgroup id="3" name="Scroll"><object id="3" name="foreground" x="0" y="60" width="80" height="20"/></objectgroup>
</map>`
	fsys := fstest.MapFS{"small.tmx": &fstest.MapFile{Data: []byte(tmx)}}

	w, err := LoadWorld(fsys, "small.tmx")
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if w.Sky.H != 60 || w.Sky.W != 80 {
		t.Fatalf("expected sky to default to the area above ground, got %+v", w.Sky)
	}
	l, ok := w.Layer("foreground")
	if !ok {
		t.Fatalf("foreground layer missing")
	}
	if l.Tiles != 2 {
		t.Fatalf("expected tile count to default to 2, got %d", l.Tiles)
	}
}
