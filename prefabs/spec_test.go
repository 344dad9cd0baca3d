package prefabs

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadObjectSpec(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		wantType  string
		hasScript bool
		hasBody   bool
	}{
		{"tree", "tree", "Game_Tree", false, false},
		{"mushroom", "mushroom.yaml", "Game_Mushroom", true, false},
		{"chest", "prefabs/chest.yaml", "Game_Chest", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := LoadObjectSpec(tc.file)
			if err != nil {
				t.Fatalf("load %s: %v", tc.file, err)
			}
			if spec.Type != tc.wantType {
				t.Fatalf("expected type %q, got %q", tc.wantType, spec.Type)
			}
			if (spec.Script != nil) != tc.hasScript {
				t.Fatalf("script presence mismatch: %+v", spec.Script)
			}
			if (spec.RigidBody != nil) != tc.hasBody {
				t.Fatalf("rigidbody presence mismatch: %+v", spec.RigidBody)
			}
		})
	}
}

func TestLoadObjectSpecMissing(t *testing.T) {
	if _, err := LoadObjectSpec("does_not_exist"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    YAMLColor
		wantErr bool
	}{
		{`"#ffffff"`, YAMLColor{1, 1, 1, 1}, false},
		{`"#00000000"`, YAMLColor{0, 0, 0, 0}, false},
		{`"ff0000"`, YAMLColor{1, 0, 0, 1}, false},
		{`"#fff"`, YAMLColor{}, true},
		{`"#gggggg"`, YAMLColor{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if c != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, c)
			}
		})
	}
}

func TestListAndScripts(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatalf("expected embedded prefabs")
	}
	for _, behavior := range []string{"bob", "spin", "player"} {
		if _, err := LoadScript(behavior); err != nil {
			t.Fatalf("load script %s: %v", behavior, err)
		}
	}
}
