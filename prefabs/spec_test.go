package prefabs

import "testing"

func TestLoadPlayerSpecDefaults(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"walk_speed", spec.WalkSpeed, 1.0},
		{"run_speed", spec.RunSpeed, 9.5},
		{"jump_speed", spec.JumpSpeed, 5.0},
		{"accel_rate", spec.AccelRate, 0.1},
		{"max_accel", spec.MaxAccel, 2.0},
		{"jump_cooldown_ms", float64(spec.JumpCooldownMS), 250},
		{"grounded_damping", spec.GroundedDamping, 10.0},
		{"airborne_damping", spec.AirborneDamping, 0.05},
		{"camera_follow_rate", spec.CameraFollowRate, 10.0},
		{"avatar_follow_rate", spec.AvatarFollowRate, 20.0},
		{"turn_rate", spec.TurnRate, 20.0},
		{"spawn_y", spec.Spawn.Y, 1.0},
		{"standing_height", spec.Standing.Height, 1.0},
		{"standing_radius", spec.Standing.Radius, 0.3},
		{"crouch_jump_height", spec.CrouchJump.Height, 0.4},
		{"crouch_jump_offset_y", spec.CrouchJump.Offset.Y, -0.3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("%s = %v, want %v", c.name, c.got, c.want)
			}
		})
	}
}

func TestLoadCameraSpecDefaults(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if spec.Distance != 6.0 {
		t.Fatalf("distance = %v, want 6.0", spec.Distance)
	}
	if spec.FOV != 1.05 {
		t.Fatalf("fov = %v, want 1.05", spec.FOV)
	}
}

func TestLoadUnknownSpec(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing spec file")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"arena.tengo", "scripts/arena.tengo"},
		{"scripts/arena.tengo", "scripts/arena.tengo"},
		{"prefabs/scripts/arena.tengo", "scripts/arena.tengo"},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWatchedFile(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"prefabs/player.yaml", true},
		{"prefabs/camera.YML", true},
		{"prefabs/scripts/arena.tengo", true},
		{"prefabs/player.yaml~", false},
		{"prefabs/.player.yaml.swp", false},
		{"README.md", false},
	}
	for _, c := range cases {
		if got := watchedFile(c.in); got != c.want {
			t.Fatalf("watchedFile(%q) = %t, want %t", c.in, got, c.want)
		}
	}
}
