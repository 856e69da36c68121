package level

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/phys"
)

func TestLoadArena(t *testing.T) {
	l, err := Load("arena.tengo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if l.GroundY != 0 {
		t.Fatalf("ground at %v, want 0", l.GroundY)
	}
	if len(l.Platforms) == 0 {
		t.Fatalf("arena has no platforms")
	}
	for i, box := range l.Platforms {
		for axis := 0; axis < 3; axis++ {
			if box.Min[axis] >= box.Max[axis] {
				t.Fatalf("platforms[%d] degenerate on axis %d: %v", i, axis, box)
			}
		}
		if box.Max.Y() <= l.GroundY {
			t.Fatalf("platforms[%d] entirely below ground: %v", i, box)
		}
	}
}

func TestLoadMissingScript(t *testing.T) {
	if _, err := Load("nope.tengo"); err == nil {
		t.Fatalf("expected error for unknown script")
	}
}

func TestBoxFromScript(t *testing.T) {
	cases := []struct {
		name    string
		in      map[string]interface{}
		want    phys.Box
		wantErr bool
	}{
		{
			"floats",
			map[string]interface{}{"min_x": -1.0, "min_y": 0.0, "min_z": -1.0, "max_x": 1.0, "max_y": 0.5, "max_z": 1.0},
			phys.Box{Min: mgl64.Vec3{-1, 0, -1}, Max: mgl64.Vec3{1, 0.5, 1}},
			false,
		},
		{
			"ints_coerced",
			map[string]interface{}{"min_x": int64(-1), "min_y": int64(0), "min_z": int64(-1), "max_x": int64(1), "max_y": int64(1), "max_z": int64(1)},
			phys.Box{Min: mgl64.Vec3{-1, 0, -1}, Max: mgl64.Vec3{1, 1, 1}},
			false,
		},
		{
			"missing_key",
			map[string]interface{}{"min_x": 0.0},
			phys.Box{},
			true,
		},
		{
			"wrong_type",
			map[string]interface{}{"min_x": "zero", "min_y": 0.0, "min_z": 0.0, "max_x": 1.0, "max_y": 1.0, "max_z": 1.0},
			phys.Box{},
			true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := boxFromScript(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("boxFromScript: %v", err)
			}
			if got != c.want {
				t.Fatalf("box = %v, want %v", got, c.want)
			}
		})
	}
}

func TestInstallReplacesPlatforms(t *testing.T) {
	w := phys.NewWorld(mgl64.Vec3{0, -9.81, 0})

	first := &Level{GroundY: 0, Platforms: []phys.Box{{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}}}
	first.Install(w)
	if len(w.Platforms()) != 1 {
		t.Fatalf("installed %d platforms, want 1", len(w.Platforms()))
	}

	second := &Level{GroundY: -0.5, Platforms: nil}
	second.Install(w)
	if len(w.Platforms()) != 0 {
		t.Fatalf("reinstall kept %d stale platforms", len(w.Platforms()))
	}
}
