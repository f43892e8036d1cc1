// Package catalog loads the read-only reference collections (races, talents,
// spells, weapons, armor) and answers the lookups the sheet needs from them.
//
// Loading never fails: a kind whose data is missing or malformed is logged
// and served as an empty list, and races fall back to a fixed list of names.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

// Catalog holds every loaded collection. It is safe for concurrent use.
type Catalog struct {
	races   []Race
	talents []Talent
	spells  []Spell
	weapons []Weapon
	armor   []Armor

	raceByName   map[string]Race
	talentByName map[string]Talent

	mu      sync.Mutex
	allowed map[string][]string
}

// Load reads every kind from src concurrently and builds the indexes
func Load(ctx context.Context, src Source) *Catalog {
	records := make([][]Record, len(Kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range Kinds {
		i, kind := i, kind
		g.Go(func() error {
			recs, err := loadKind(gctx, src, kind)
			if err != nil {
				slog.WarnContext(ctx, "catalog kind unavailable, serving empty list",
					"kind", string(kind),
					"error", err.Error())
				return nil
			}
			records[i] = recs
			return nil
		})
	}
	_ = g.Wait()

	c := &Catalog{allowed: make(map[string][]string)}
	for _, r := range records[0] {
		c.races = append(c.races, newRace(r))
	}
	for _, r := range records[1] {
		c.talents = append(c.talents, newTalent(r))
	}
	for _, r := range records[2] {
		c.spells = append(c.spells, newSpell(r))
	}
	for _, r := range records[3] {
		c.weapons = append(c.weapons, newWeapon(r))
	}
	for _, r := range records[4] {
		c.armor = append(c.armor, newArmor(r))
	}

	if len(c.races) == 0 {
		slog.WarnContext(ctx, "no race data, using fallback races",
			"count", len(FallbackRaces))
		for _, name := range FallbackRaces {
			c.races = append(c.races, Race{Record: NewRecord(map[string]string{"Name": name}), Name: name})
		}
	}

	c.buildIndexes(ctx)
	return c
}

func (c *Catalog) buildIndexes(ctx context.Context) {
	var err error
	c.raceByName, err = IndexByName(c.races, func(r Race) string { return r.Name })
	if err != nil {
		slog.WarnContext(ctx, "duplicate race names, keeping first",
			"duplicates", errors.GetMeta(err)["duplicates"])
	}

	c.talentByName, err = IndexByName(c.talents, func(t Talent) string { return t.Name })
	if err != nil {
		slog.WarnContext(ctx, "duplicate talent names, keeping first",
			"duplicates", errors.GetMeta(err)["duplicates"])
	}

	for kind, list := range map[Kind][]string{
		KindSpells:  names(c.spells, func(s Spell) string { return s.Name }),
		KindWeapons: names(c.weapons, func(w Weapon) string { return w.Name }),
		KindArmor:   names(c.armor, func(a Armor) string { return a.Name }),
	} {
		if dups := duplicates(list); len(dups) > 0 {
			slog.WarnContext(ctx, "duplicate catalog names",
				"kind", string(kind),
				"duplicates", dups)
		}
	}
}

func loadKind(ctx context.Context, src Source, kind Kind) ([]Record, error) {
	data, format, err := src.Read(ctx, kind)
	if err != nil {
		return nil, err
	}

	raw, err := decode(data, format)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "malformed catalog data").
			WithMeta("kind", string(kind)).
			WithMeta("format", format.String())
	}

	out := make([]Record, 0, len(raw))
	for i, item := range raw {
		rec := normalizeRecord(item)
		if recordName(rec) == "" {
			slog.DebugContext(ctx, "dropping unnamed catalog item",
				"kind", string(kind),
				"position", i)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func decode(data []byte, format Format) ([]map[string]interface{}, error) {
	var raw []map[string]interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	}
	if raw == nil {
		return nil, errors.InvalidArgument("catalog document is not an array")
	}
	return raw, nil
}

// Races returns every race in load order
func (c *Catalog) Races() []Race {
	return append([]Race(nil), c.races...)
}

// Talents returns every talent in load order
func (c *Catalog) Talents() []Talent {
	return append([]Talent(nil), c.talents...)
}

// Spells returns every spell in load order
func (c *Catalog) Spells() []Spell {
	return append([]Spell(nil), c.spells...)
}

// Weapons returns every weapon in load order
func (c *Catalog) Weapons() []Weapon {
	return append([]Weapon(nil), c.weapons...)
}

// Armor returns every armor piece in load order
func (c *Catalog) Armor() []Armor {
	return append([]Armor(nil), c.armor...)
}

// RaceNames returns the race names in load order. Never empty.
func (c *Catalog) RaceNames() []string {
	return names(c.races, func(r Race) string { return r.Name })
}

// RaceByName looks a race up by exact name
func (c *Catalog) RaceByName(name string) (Race, bool) {
	r, ok := c.raceByName[strings.TrimSpace(name)]
	return r, ok
}

// TalentByName looks a talent up by exact name
func (c *Catalog) TalentByName(name string) (Talent, bool) {
	t, ok := c.talentByName[strings.TrimSpace(name)]
	return t, ok
}

// RaceTalentByName finds a talent from the Race Talent table, ignoring case
func (c *Catalog) RaceTalentByName(name string) (Talent, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Talent{}, false
	}
	for _, t := range c.talents {
		if t.IsRaceTalent() && strings.ToLower(t.Name) == needle {
			return t, true
		}
	}
	return Talent{}, false
}

// Children returns the talents whose ParentName is parent, in load order
func (c *Catalog) Children(parent string) []Talent {
	parent = strings.TrimSpace(parent)
	if parent == "" {
		return nil
	}
	var out []Talent
	for _, t := range c.talents {
		if t.ParentName == parent {
			out = append(out, t)
		}
	}
	return out
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}
	return out
}
