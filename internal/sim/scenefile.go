package sim

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- YAML types ---

type SceneFile struct {
	Player ActorDef   `yaml:"player"`
	Actors []ActorDef `yaml:"actors"`
}

type ActorDef struct {
	Name     string     `yaml:"name"`
	FormID   uint32     `yaml:"formID,omitempty"`
	Tags     []string   `yaml:"tags,omitempty"`
	Color    string     `yaml:"color,omitempty"`
	Position [3]float32 `yaml:"position"`
	Heading  float32    `yaml:"heading,omitempty"`
	Velocity [3]float32 `yaml:"velocity,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// LoadScene reads a scene file from disk into a new World.
func LoadScene(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene builds a World from YAML scene data.
func ParseScene(data []byte) (*World, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	w := New()
	p := w.PlayerActor()
	p.Transform.Position = vec3(sf.Player.Position)
	p.Transform.Heading = sf.Player.Heading
	p.Velocity = vec3(sf.Player.Velocity)
	if sf.Player.Color != "" {
		p.Color = sf.Player.Color
	}

	seen := map[uint32]string{p.FormID: p.Name}
	for i, def := range sf.Actors {
		if def.Name == "" {
			return nil, fmt.Errorf("actor %d: missing name", i)
		}
		if def.FormID != 0 {
			if other, dup := seen[def.FormID]; dup {
				return nil, fmt.Errorf("actor %q: form ID %08X already used by %q", def.Name, def.FormID, other)
			}
			seen[def.FormID] = def.Name
		}

		a := NewActor(def.Name)
		a.FormID = def.FormID
		a.Tags = def.Tags
		a.Color = def.Color
		a.Transform = Transform{Position: vec3(def.Position), Heading: def.Heading}
		a.Velocity = vec3(def.Velocity)
		w.Spawn(a)
	}
	return w, nil
}
