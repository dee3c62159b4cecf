package leveldata

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"
)

const miniLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="50" tileheight="50" infinite="0">
 <properties>
  <property name="time_limit" type="int" value="120"/>
 </properties>
 <objectgroup id="1" name="Solids">
  <object id="1" name="floor" x="0" y="900" width="2000" height="100"/>
 </objectgroup>
 <objectgroup id="2" name="Notes">
  <object id="2" name="ignored" x="10" y="10" width="10" height="10"/>
 </objectgroup>
 <objectgroup id="3" name="Crates">
  <object id="3" name="heavy" x="500" y="700" width="200" height="200">
   <properties>
    <property name="mass" type="float" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Player">
  <object id="4" name="slime" x="100" y="731" width="225" height="169"/>
 </objectgroup>
 <objectgroup id="5" name="Platforms">
  <object id="5" name="lift" x="800" y="600" width="300" height="40">
   <properties>
    <property name="travel_y" type="float" value="-200"/>
    <property name="duration" type="float" value="2.5"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noPlayerLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="50" tileheight="50" infinite="0">
 <objectgroup id="1" name="Solids">
  <object id="1" name="floor" x="0" y="400" width="500" height="100"/>
 </objectgroup>
</map>
`

const untimedLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="50" tileheight="50" infinite="0">
 <objectgroup id="1" name="Player">
  <object id="1" name="slime" x="0" y="200" width="225" height="169"/>
 </objectgroup>
</map>
`

func TestLoadLevelWithoutMapProperties(t *testing.T) {
	fsys := fstest.MapFS{"levels/untimed.tmx": {Data: []byte(untimedLevel)}}

	data, err := LoadLevel(fsys, "levels/untimed.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if data.TimeLimit != 0 {
		t.Errorf("TimeLimit = %d, want 0", data.TimeLimit)
	}
	if _, ok := data.PlayerSpawn(); !ok {
		t.Error("player spawn missing")
	}
}

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/mini.tmx": {Data: []byte(miniLevel)}}

	data, err := LoadLevel(fsys, "levels/mini.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if data.Name != "mini" {
		t.Errorf("Name = %q", data.Name)
	}
	if data.Width != 2000 || data.Height != 1000 {
		t.Errorf("size = %dx%d, want 2000x1000", data.Width, data.Height)
	}
	if data.TimeLimit != 120 {
		t.Errorf("TimeLimit = %d, want 120", data.TimeLimit)
	}

	wantKinds := []Kind{KindSolid, KindCrate, KindPlayer, KindPlatform}
	if len(data.Spawns) != len(wantKinds) {
		t.Fatalf("got %d spawns, want %d", len(data.Spawns), len(wantKinds))
	}
	for i, k := range wantKinds {
		if data.Spawns[i].Kind != k {
			t.Errorf("spawn %d kind = %v, want %v", i, data.Spawns[i].Kind, k)
		}
	}

	crate := data.Spawns[1]
	if crate.Mass != 2 || crate.W != 200 {
		t.Errorf("crate = %+v", crate)
	}
	lift := data.Spawns[3]
	if lift.TravelY != -200 || lift.Duration != 2.5 {
		t.Errorf("lift = %+v", lift)
	}

	player, ok := data.PlayerSpawn()
	if !ok || player.X != 100 || player.Y != 731 {
		t.Errorf("player spawn = %+v, %v", player, ok)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx":  {Data: []byte(noPlayerLevel)},
		"levels/broken.tmx": {Data: []byte("<map")},
	}

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"missing player", "levels/empty.tmx", ErrNoPlayerSpawn},
		{"malformed xml", "levels/broken.tmx", nil},
		{"missing file", "levels/none.tmx", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLevel(fsys, tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error %v is not %v", err, tt.target)
			}
		})
	}
}

func TestLoadAllLevelsSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(miniLevel)},
		"levels/a.tmx": {Data: []byte(miniLevel)},
	}

	levels, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "a" || levels[1].Name != "b" {
		t.Fatalf("unexpected order: %v", names(levels))
	}

	if _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestShippedLevels(t *testing.T) {
	levels, err := LoadAllLevels(os.DirFS("../../assets"), "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("got %d levels", len(levels))
	}
	for _, l := range levels {
		t.Run(l.Name, func(t *testing.T) {
			if l.TimeLimit <= 0 {
				t.Errorf("no time limit")
			}
			if l.Count(KindFinish) != 1 {
				t.Errorf("finish count = %d", l.Count(KindFinish))
			}
			for _, s := range l.Spawns {
				if s.X+s.W > float64(l.Width) || s.Y+s.H > float64(l.Height) {
					t.Errorf("%s %q outside the map", s.Kind, s.Name)
				}
			}
		})
	}
}

func names(levels []*LevelData) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Name
	}
	return out
}
