package chess

import "fmt"

// PlayerID is a stable player index. Players are numbered from 1; Nobody
// marks an unowned cell.
type PlayerID int

const Nobody PlayerID = 0

type TeamID int

const NoTeam TeamID = 0

type Player struct {
	ID   PlayerID
	Name string
	Team TeamID
}

func (p Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Player%d", p.ID)
}

type Team struct {
	ID      TeamID
	Name    string
	Members []PlayerID
}

// Roster holds the players of a match and the order in which they move.
// In team mode the order alternates teams so teammates never move back to back.
type Roster struct {
	players []Player
	teams   []Team
	order   []PlayerID
}

func NewRoster(names ...string) *Roster {
	r := &Roster{}
	for i, name := range names {
		p := Player{ID: PlayerID(i + 1), Name: name}
		r.players = append(r.players, p)
		r.order = append(r.order, p.ID)
	}
	return r
}

// TeamSpec names a team and its members in seat order.
type TeamSpec struct {
	Name    string
	Members []string
}

// NewTeamRoster needs at least two teams, each with at least one member.
func NewTeamRoster(specs ...TeamSpec) (*Roster, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("%w: %d team(s), need at least 2", ErrTooFewPlayers, len(specs))
	}

	r := &Roster{}
	longest := 0
	for i, spec := range specs {
		if len(spec.Members) == 0 {
			return nil, fmt.Errorf("%w: team %q has no members", ErrTooFewPlayers, spec.Name)
		}

		t := Team{ID: TeamID(i + 1), Name: spec.Name}
		if t.Name == "" {
			t.Name = fmt.Sprintf("Team%d", t.ID)
		}
		for _, name := range spec.Members {
			p := Player{ID: PlayerID(len(r.players) + 1), Name: name, Team: t.ID}
			r.players = append(r.players, p)
			t.Members = append(t.Members, p.ID)
		}
		r.teams = append(r.teams, t)
		longest = max(longest, len(t.Members))
	}

	// Shorter teams wrap around so every round still alternates teams.
	for seat := 0; seat < longest; seat++ {
		for _, t := range r.teams {
			r.order = append(r.order, t.Members[seat%len(t.Members)])
		}
	}
	return r, nil
}

func (r *Roster) Players() []Player {
	return append([]Player(nil), r.players...)
}

func (r *Roster) Teams() []Team {
	return append([]Team(nil), r.teams...)
}

func (r *Roster) TeamMode() bool {
	return len(r.teams) > 0
}

func (r *Roster) Len() int {
	return len(r.players)
}

func (r *Roster) Player(id PlayerID) (Player, bool) {
	if id < 1 || int(id) > len(r.players) {
		return Player{}, false
	}
	return r.players[id-1], true
}

func (r *Roster) Team(id TeamID) (Team, bool) {
	if id < 1 || int(id) > len(r.teams) {
		return Team{}, false
	}
	return r.teams[id-1], true
}

// Order is the turn rotation. A player may appear more than once when teams
// have uneven sizes.
func (r *Roster) Order() []PlayerID {
	return append([]PlayerID(nil), r.order...)
}

// Sides reports how many competing sides the roster has.
func (r *Roster) Sides() int {
	if r.TeamMode() {
		return len(r.teams)
	}
	return len(r.players)
}
