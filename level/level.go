package level

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/phys"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/prefabs"
)

// Level is the static arena the player body collides with: a ground plane
// and a set of platform boxes produced by a tengo script.
type Level struct {
	Name      string
	GroundY   float64
	Platforms []phys.Box
}

// Load compiles and runs the named script from prefabs/scripts/ and reads
// its `ground_y` and `platforms` globals.
func Load(name string) (*Level, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("level: run %s: %v", name, err)
	}

	l := &Level{Name: name, GroundY: compiled.Get("ground_y").Float()}

	raw := compiled.Get("platforms").Array()
	for i, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("level: %s platforms[%d] is not a map", name, i)
		}
		box, err := boxFromScript(m)
		if err != nil {
			return nil, fmt.Errorf("level: %s platforms[%d]: %v", name, i, err)
		}
		l.Platforms = append(l.Platforms, box)
	}

	return l, nil
}

func boxFromScript(m map[string]interface{}) (phys.Box, error) {
	get := func(key string) (float64, error) {
		v, ok := m[key]
		if !ok {
			return 0, fmt.Errorf("missing %q", key)
		}
		f, ok := v.(float64)
		if !ok {
			if n, ok := v.(int64); ok {
				return float64(n), nil
			}
			return 0, fmt.Errorf("%q is not a number", key)
		}
		return f, nil
	}

	var vals [6]float64
	for i, key := range [...]string{"min_x", "min_y", "min_z", "max_x", "max_y", "max_z"} {
		f, err := get(key)
		if err != nil {
			return phys.Box{}, err
		}
		vals[i] = f
	}

	return phys.Box{
		Min: mgl64.Vec3{vals[0], vals[1], vals[2]},
		Max: mgl64.Vec3{vals[3], vals[4], vals[5]},
	}, nil
}

// Install pushes the level geometry into the physics world. Safe to call
// again after a reload; it replaces the previous platform set.
func (l *Level) Install(w *phys.World) {
	w.SetGroundPlane(l.GroundY)
	w.SetPlatforms(l.Platforms)
}
