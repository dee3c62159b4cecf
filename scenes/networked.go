package scenes

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/level"
	"github.com/automoto/stretch/network"
	"github.com/automoto/stretch/physics"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// netInterpData smooths a synced body between two server snapshots.
type netInterpData struct {
	Prev   netcomponents.NetBodyData
	Target netcomponents.NetBodyData
	T      float64
}

var netInterp = donburi.NewComponentType[netInterpData]()

// bannerFrames is how long a level result stays on screen.
const bannerFrames = 180

// NetworkedScene shows a level running on a server. The pilot's keyboard
// drives it; everyone else watches.
type NetworkedScene struct {
	env        *Env
	netClient  *network.Client
	world      donburi.World
	presentIDs map[esync.NetworkId]bool
	hud        netcomponents.NetLevelData
	cam        camera
	banner     string
	bannerLeft int
	once       sync.Once
}

func NewNetworkedScene(env *Env, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		env:        env,
		netClient:  client,
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

func (ns *NetworkedScene) configure() {
	ns.world = donburi.NewWorld()
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if backPressed() || state == network.StateDisconnected || state == network.StateError {
		log.Println("[networked] leaving server")
		ns.netClient.Disconnect()
		menu := NewMenuScene(ns.env)
		if err := ns.netClient.LastError(); err != nil {
			menu.SetStatus(err.Error())
		}
		ns.env.Changer.ChangeScene(menu)
		return
	}
	if state != network.StateJoinedGame {
		return
	}

	if ns.netClient.Pilot() {
		if err := ns.netClient.SendInput(toMessage(ReadInput())); err != nil {
			log.Printf("[networked] send input: %v", err)
		}
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}
	ns.advanceInterp()

	for _, batch := range ns.netClient.DrainEvents() {
		events := make([]level.Event, len(batch.Events))
		for i, e := range batch.Events {
			events[i] = level.Event(e)
		}
		ns.env.Sound.Play(events)
	}
	for _, fin := range ns.netClient.DrainFinished() {
		ns.banner = fmt.Sprintf("%s %v with %d points, next up %s",
			fin.Level, level.Outcome(fin.Outcome), fin.Score, fin.Next)
		ns.bannerLeft = bannerFrames
	}
	if ns.bannerLeft > 0 {
		ns.bannerLeft--
	}
}

// advanceInterp moves every body one client frame toward its latest
// server position.
func (ns *NetworkedScene) advanceInterp() {
	step := 1.0
	if rate := ns.netClient.TickRate(); rate > 0 && rate < ebiten.TPS() {
		step = float64(rate) / float64(ebiten.TPS())
	}
	netInterp.Each(ns.world, func(entry *donburi.Entry) {
		interp := netInterp.Get(entry)
		interp.T = min(interp.T+step, 1)
		netcomponents.NetBody.SetValue(entry, *netcomponents.LerpNetBody(interp.Prev, interp.Target, interp.T))
	})
}

func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ns.world

	clear(ns.presentIDs)

	for _, ent := range snapshot {
		ns.presentIDs[ent.Id] = true

		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			switch v := instance.(type) {
			case netcomponents.NetLevelData:
				ns.hud = v
			case netcomponents.NetBodyData:
				ns.applyBody(world, ent.Id, v)
			}
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ns.presentIDs[*id] {
			entry.Remove()
		}
	})
}

func (ns *NetworkedScene) applyBody(world donburi.World, id esync.NetworkId, body netcomponents.NetBodyData) {
	entity := esync.FindByNetworkId(world, id)
	if !world.Valid(entity) {
		// First snapshot: place directly, no interpolation
		entity = world.Create(netcomponents.NetBody, netInterp)
		entry := world.Entry(entity)
		entry.AddComponent(esync.NetworkIdComponent)
		esync.NetworkIdComponent.SetValue(entry, id)
		netcomponents.NetBody.SetValue(entry, body)
		netInterp.SetValue(entry, netInterpData{Prev: body, Target: body, T: 1})
		return
	}

	entry := world.Entry(entity)
	interp := netInterp.Get(entry)
	interp.Prev = *netcomponents.NetBody.Get(entry)
	interp.Target = body
	interp.T = 0
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	if ns.world == nil {
		screen.Fill(cfg.Render.Background)
		return
	}

	var items, players []drawable
	netcomponents.NetBody.Each(ns.world, func(entry *donburi.Entry) {
		b := netcomponents.NetBody.Get(entry)
		d := drawable{
			Kind:  leveldata.Kind(b.Kind),
			Box:   physics.AABB{X: b.X, Y: b.Y, W: b.W, H: b.H},
			Label: b.Label,
		}
		if d.Kind == leveldata.KindPlayer {
			players = append(players, d)
			return
		}
		items = append(items, d)
	})
	if len(players) > 0 {
		ns.cam.follow(players[0].Box)
	}
	drawWorld(screen, append(items, players...), ns.cam)

	note := "watching " + ns.netClient.ServerName()
	if ns.netClient.Pilot() {
		note = "piloting " + ns.netClient.ServerName()
	}
	if ns.bannerLeft > 0 {
		note = ns.banner
	}
	drawHUD(screen, hudView{
		Level:       ns.hud.Name,
		Health:      ns.hud.Health,
		MaxHealth:   ns.hud.MaxHealth,
		Score:       ns.hud.Score,
		SecondsLeft: ns.hud.SecondsLeft,
		Form:        cfg.Form(ns.hud.Form),
		Note:        note,
	})
}
