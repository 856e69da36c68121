package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals a yaml spec by filename, preferring an
// on-disk copy over the embedded default.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type CapsuleSpec struct {
	Height float64  `yaml:"height"`
	Radius float64  `yaml:"radius"`
	Offset Vec3Spec `yaml:"offset"`
}

// PlayerSpec tunes the character controller. Defaults ship embedded in
// player.yaml; a copy under a prefabs/ directory next to the binary
// overrides them and is hot-reloaded while running.
type PlayerSpec struct {
	Name string `yaml:"name"`

	WalkSpeed      float64 `yaml:"walk_speed"`
	RunSpeed       float64 `yaml:"run_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	AccelRate      float64 `yaml:"accel_rate"`
	MaxAccel       float64 `yaml:"max_accel"`
	JumpCooldownMS int     `yaml:"jump_cooldown_ms"`

	GroundedDamping float64 `yaml:"grounded_damping"`
	AirborneDamping float64 `yaml:"airborne_damping"`

	CameraFollowRate float64 `yaml:"camera_follow_rate"`
	AvatarFollowRate float64 `yaml:"avatar_follow_rate"`
	TurnRate         float64 `yaml:"turn_rate"`

	Spawn      Vec3Spec    `yaml:"spawn"`
	Standing   CapsuleSpec `yaml:"standing"`
	CrouchJump CapsuleSpec `yaml:"crouch_jump"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CameraSpec tunes the orbit rig.
type CameraSpec struct {
	Name     string  `yaml:"name"`
	Distance float64 `yaml:"distance"`
	Pitch    float64 `yaml:"pitch"`
	FOV      float64 `yaml:"fov"`
	YawSpeed float64 `yaml:"yaw_speed"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
