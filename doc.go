/*
Package lattice is a team timeline planner: assemble a small squad of
operators on parallel tracks, place their timed actions along a shared
timeline, and connect actions across tracks with directed link edges that
express combo and trigger relationships. The whole project serializes to a
compact string that fits in a URL or the clipboard and reconstructs with the
same meaning on the other side.

The Planner in this package is the high-level entry point. It owns the
editable board (pkg/timeline), loads the character roster from a game-data
source (pkg/gamedata), and speaks the share codec (pkg/share). All mutation
funnels through Planner methods, which serialize access; there is no ambient
global state.

# Usage

	p := lattice.New(
		lattice.WithSource(gamedata.NewClient("https://example.org/gamedata.json")),
	)
	if err := p.LoadRoster(ctx); err != nil {
		log.Fatal(err)
	}

	p.ChangeTrackOperator(0, "", "op_ash")
	p.SelectTrack("op_ash")
	inst, _ := p.PlaceSkill(0, domain.AbilitySkill)

	p.SelectAction(inst.InstanceID)
	p.StartLinking(nil)
	conn, err := p.ConfirmLinking(otherInstanceID)

	shareStr, _ := p.ExportShare()

Adapters in pkg/adapters expose the same operations over HTTP (chi) and MCP,
and store published share strings in memory or Redis.
*/
package lattice
