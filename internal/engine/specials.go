package engine

import (
	"fmt"
	"strings"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// opcode identifies one special-case transform. The set is closed: an
// unrecognized token is a corpus error, not an extension point.
type opcode int

const (
	opBook opcode = iota
	opBooksort
	opCharacteristics
	opGendersort
	opHalfEthnicity
	opHumanEthnicity
	opSubracesort
	opDragonbornVariantType
	opDragonmarkVariant
	opTieflingAppearance
	opTieflingVariantType
	opMonstrousOrigin
	opBackgroundTraits
	opRavnicaContacts
	opDimirContacts
)

var opcodeNames = map[string]opcode{
	"book":                   opBook,
	"booksort":               opBooksort,
	"characteristics":        opCharacteristics,
	"gendersort":             opGendersort,
	"halfethnicity":          opHalfEthnicity,
	"humanethnicity":         opHumanEthnicity,
	"subracesort":            opSubracesort,
	"dragonbornvarianttype":  opDragonbornVariantType,
	"dragonmarkvariant":      opDragonmarkVariant,
	"tieflingappearance":     opTieflingAppearance,
	"tieflingvarianttype":    opTieflingVariantType,
	"monstrousorigin":        opMonstrousOrigin,
	"backgroundtraits":       opBackgroundTraits,
	"ravnicacontacts":        opRavnicaContacts,
	"dimircontacts":          opDimirContacts,
}

// Book gates on the variant opcodes
const (
	dragonbornVariantBook = "ftd"
	dragonmarkBook        = "ebr"
	tieflingVariantBook   = "scag"
)

// rerollSentinel redirects a non-guild contact draw back into the guild pool
const rerollSentinel = "Reroll"

// Inline tables behind the variant opcodes
var (
	dragonbornVariantTypes = []string{
		"Chromatic Dragonborn",
		"Metallic Dragonborn",
		"Gem Dragonborn",
	}

	tieflingAppearanceFeatures = []string{
		"small horns",
		"large spiral horns",
		"fangs or sharp teeth",
		"a forked tongue",
		"catlike eyes",
		"six fingers on each hand",
		"goatlike legs",
		"cloven hoofs",
		"a forked tail",
		"leathery or scaly skin",
		"red or dark blue skin",
		"a sulfurous odor",
		"casts no shadow or reflection",
	}
)

// parseSpecial splits an opcode token into its opcode and trailing argument
// segment (tokens are hyphen-delimited: opcode-arg)
func parseSpecial(token string) (opcode, string, error) {
	name := token
	arg := ""
	if i := strings.IndexByte(token, '-'); i >= 0 {
		name = token[:i]
		arg = token[i+1:]
	}

	op, ok := opcodeNames[name]
	if !ok {
		return 0, "", errors.InvalidArgumentf("unknown special opcode %q", token)
	}
	return op, arg, nil
}

// applySpecial runs one opcode against the node. A nil node result (with a
// nil error) suppresses the node.
func (e *engine) applySpecial(gctx *Context, node *corpus.Node, token string) (*corpus.Node, error) {
	op, arg, err := parseSpecial(token)
	if err != nil {
		return nil, err
	}

	switch op {
	case opBook:
		if corpus.CodesIntersect(arg, gctx.Books) {
			return node, nil
		}
		return nil, nil

	case opBooksort:
		return e.booksort(gctx, node)

	case opCharacteristics:
		return e.characteristics(node)

	case opGendersort:
		return e.gendersort(gctx, node)

	case opHalfEthnicity:
		roll, err := e.dice.UniformInt(10)
		if err != nil {
			return nil, err
		}
		if roll < 8 {
			ethnicity, err := e.RandomEthnicity(gctx)
			if err != nil {
				return nil, err
			}
			gctx.SetEthnicity(ethnicity)
		} else {
			gctx.SetEthnicity(EthnicityUnknown)
		}
		return node, nil

	case opHumanEthnicity:
		ethnicity, err := e.RandomEthnicity(gctx)
		if err != nil {
			return nil, err
		}
		gctx.SetEthnicity(ethnicity)
		return node, nil

	case opSubracesort:
		return e.subracesort(gctx, node, arg)

	case opDragonbornVariantType:
		if !gctx.Books.Contains(dragonbornVariantBook) {
			return nil, nil
		}
		variant, err := e.dice.PickOne(dragonbornVariantTypes)
		if err != nil {
			return nil, err
		}
		return corpus.Scalar(variant), nil

	case opDragonmarkVariant:
		if !gctx.Books.Contains(dragonmarkBook) {
			return nil, nil
		}
		coin, err := e.dice.UniformInt(2)
		if err != nil {
			return nil, err
		}
		if coin == 0 {
			return nil, nil
		}
		return node, nil

	case opTieflingAppearance:
		return e.tieflingAppearance(node)

	case opTieflingVariantType:
		if !gctx.Books.Contains(tieflingVariantBook) {
			return nil, nil
		}
		return node, nil

	case opMonstrousOrigin:
		return e.monstrousOrigin(gctx)

	case opBackgroundTraits:
		return e.backgroundTraits(gctx, arg)

	case opRavnicaContacts:
		return e.ravnicaContacts(node)

	case opDimirContacts:
		return e.dimirContacts(node)

	default:
		return nil, errors.Internalf("unhandled special opcode %q", token)
	}
}

// booksort merges every book-keyed list property that passes the book filter
// into one pool and picks one element uniformly
func (e *engine) booksort(gctx *Context, node *corpus.Node) (*corpus.Node, error) {
	var pool []*corpus.Node
	for _, key := range node.Keys() {
		if !corpus.IsAvailable(key, gctx.Books) {
			continue
		}
		child, _ := node.Child(key)
		if child.Kind() != corpus.KindList {
			continue
		}
		pool = append(pool, child.List()...)
	}

	if len(pool) == 0 {
		return nil, nil
	}

	i, err := e.dice.UniformInt(len(pool))
	if err != nil {
		return nil, err
	}
	return pool[i], nil
}

// characteristics computes derived Age/Height/Weight from the node's
// numeric fields. The height-modifier roll feeds both height and weight.
func (e *engine) characteristics(node *corpus.Node) (*corpus.Node, error) {
	scalar := func(field string) (string, error) {
		child, ok := node.Child(field)
		if !ok || child.Kind() != corpus.KindScalar {
			return "", errors.MissingCorpusFieldf("characteristics node is missing %q", field)
		}
		return child.Scalar(), nil
	}
	intField := func(field string) (int, error) {
		text, err := scalar(field)
		if err != nil {
			return 0, err
		}
		child, _ := node.Child(field)
		v, err := child.Int()
		if err != nil {
			return 0, errors.MissingCorpusFieldf("characteristics field %q is not a number: %s", field, text)
		}
		return v, nil
	}

	minAge, err := intField("minage")
	if err != nil {
		return nil, err
	}
	maxAge, err := intField("maxage")
	if err != nil {
		return nil, err
	}
	baseHeight, err := intField("baseheight")
	if err != nil {
		return nil, err
	}
	heightMod, err := scalar("heightmod")
	if err != nil {
		return nil, err
	}
	baseWeight, err := intField("baseweight")
	if err != nil {
		return nil, err
	}
	weightMod, err := scalar("weightmod")
	if err != nil {
		return nil, err
	}

	age := minAge
	if span := maxAge - minAge; span > 0 {
		extra, err := e.dice.UniformInt(span)
		if err != nil {
			return nil, err
		}
		age += extra
	}
	ageSuffix := "years"
	if age == 1 {
		ageSuffix = "year"
	}

	heightRoll, err := e.dice.Roll(heightMod)
	if err != nil {
		return nil, err
	}
	weightRoll, err := e.dice.Roll(weightMod)
	if err != nil {
		return nil, err
	}

	totalInches := baseHeight + heightRoll
	weight := baseWeight + heightRoll*weightRoll

	pairs := []corpus.Pair{
		{Key: "Age", Value: corpus.Scalar(fmt.Sprintf("%d %s", age, ageSuffix))},
		{Key: "Height", Value: corpus.Scalar(fmt.Sprintf("%d'%d\"", totalInches/12, totalInches%12))},
		{Key: "Weight", Value: corpus.Scalar(fmt.Sprintf("%d lbs.", weight))},
	}

	// _other entries pass through verbatim and resolve downstream.
	if other, ok := node.Child("_other"); ok && other.Kind() == corpus.KindMap {
		for _, key := range other.Keys() {
			child, _ := other.Child(key)
			pairs = append(pairs, corpus.Pair{Key: key, Value: child})
		}
	}

	return corpus.Map(pairs...), nil
}

// gendersort picks the Male or Female sub-property by character gender,
// flipping a coin when the gender is outside the binary values
func (e *engine) gendersort(gctx *Context, node *corpus.Node) (*corpus.Node, error) {
	male, okM := node.Child(string(entities.GenderMale))
	female, okF := node.Child(string(entities.GenderFemale))
	if !okM || !okF {
		return nil, errors.MissingCorpusField("gendersort node needs Male and Female properties")
	}

	gender := gctx.Record.Gender
	if !gender.Binary() {
		coin, err := e.dice.UniformInt(2)
		if err != nil {
			return nil, err
		}
		if coin == 0 {
			gender = entities.GenderMale
		} else {
			gender = entities.GenderFemale
		}
	}

	if gender == entities.GenderMale {
		return male, nil
	}
	return female, nil
}

// subracesort replaces the subrace property of a "Subraces and Variants"
// container with one book-merged pick, then narrows the sibling
// "Physical Characteristics" mapping to the entry keyed by that pick
func (e *engine) subracesort(gctx *Context, node *corpus.Node, arg string) (*corpus.Node, error) {
	property := "Subrace"
	if arg != "" {
		property = strings.ReplaceAll(arg, "_", " ")
	}

	options, ok := node.Child(property)
	if !ok {
		return nil, errors.MissingCorpusFieldf("subracesort container is missing %q", property)
	}

	picked, err := e.booksort(gctx, options)
	if err != nil {
		return nil, err
	}
	if picked == nil {
		return nil, errors.NoEligibleEntryf("no %s option passed the book filter", property)
	}
	chosen, err := e.Resolve(gctx, picked)
	if err != nil {
		return nil, err
	}
	if chosen == nil || !chosen.IsLeaf() {
		return nil, errors.MissingCorpusFieldf("%s options must resolve to plain text", property)
	}

	result := node.ReplaceChild(property, corpus.Scalar(chosen.Text))

	if characteristics, ok := node.Child("Physical Characteristics"); ok && characteristics.Kind() == corpus.KindMap {
		match, ok := characteristics.Child(chosen.Text)
		if !ok {
			return nil, errors.MissingCorpusFieldf("no physical characteristics for subrace %q", chosen.Text)
		}
		result = result.ReplaceChild("Physical Characteristics", match)
	}

	return result, nil
}

// tieflingAppearance has a 1-in-3 chance of no entry, otherwise joins 2-5
// distinct features as a comma list
func (e *engine) tieflingAppearance(_ *corpus.Node) (*corpus.Node, error) {
	none, err := e.dice.UniformInt(3)
	if err != nil {
		return nil, err
	}
	if none == 0 {
		return nil, nil
	}

	extra, err := e.dice.UniformInt(4)
	if err != nil {
		return nil, err
	}
	features, err := e.dice.PickMany(tieflingAppearanceFeatures, 2+extra)
	if err != nil {
		return nil, err
	}
	return corpus.Scalar(strings.Join(features, ", ")), nil
}

// monstrousOrigin picks from the fixed origin table of the misc document
func (e *engine) monstrousOrigin(gctx *Context) (*corpus.Node, error) {
	if gctx.Corpus == nil || gctx.Corpus.Misc == nil {
		return nil, errors.MissingCorpusField("misc document is missing")
	}
	origins, ok := gctx.Corpus.Misc.Child("Monstrous Origin")
	if !ok || origins.Kind() != corpus.KindList {
		return nil, errors.MissingCorpusField("misc document has no Monstrous Origin list")
	}

	origin, err := e.dice.PickOne(origins.Strings())
	if err != nil {
		return nil, err
	}
	return corpus.Scalar(origin), nil
}

// backgroundTraits copies the four personality sub-fields from another named
// background entry (the underscore-decoded opcode argument)
func (e *engine) backgroundTraits(gctx *Context, arg string) (*corpus.Node, error) {
	if gctx.Corpus == nil || gctx.Corpus.Backgrounds == nil {
		return nil, errors.MissingCorpusField("backgrounds document is missing")
	}

	source := strings.ReplaceAll(arg, "_", " ")
	entry, ok := gctx.Corpus.Backgrounds.Child(source)
	if !ok {
		return nil, errors.MissingCorpusFieldf("background %q not found for trait copy", source)
	}

	pairs := make([]corpus.Pair, 0, 4)
	for _, field := range []string{"Trait", "Ideal", "Bond", "Flaw"} {
		child, ok := entry.Child(field)
		if !ok {
			return nil, errors.MissingCorpusFieldf("background %q is missing %q", source, field)
		}
		pairs = append(pairs, corpus.Pair{Key: field, Value: child})
	}

	return corpus.Map(pairs...), nil
}

// ravnicaContacts builds an ally/rival pair from the guild pool plus one
// non-guild contact, honoring the reroll sentinel
func (e *engine) ravnicaContacts(node *corpus.Node) (*corpus.Node, error) {
	guildNode, ok := node.Child("Guild Contacts")
	if !ok || guildNode.Kind() != corpus.KindList {
		return nil, errors.MissingCorpusField("ravnicacontacts node needs a Guild Contacts list")
	}
	otherNode, ok := node.Child("Non-Guild Contacts")
	if !ok || otherNode.Kind() != corpus.KindList {
		return nil, errors.MissingCorpusField("ravnicacontacts node needs a Non-Guild Contacts list")
	}

	guildPool := guildNode.Strings()
	ally, err := e.dice.PickOne(guildPool)
	if err != nil {
		return nil, err
	}
	rival, err := e.dice.PickOne(guildPool)
	if err != nil {
		return nil, err
	}

	contactLabel := "Non-Guild Contact"
	contact, err := e.dice.PickOne(otherNode.Strings())
	if err != nil {
		return nil, err
	}
	if contact == rerollSentinel {
		contact, err = e.dice.PickOne(guildPool)
		if err != nil {
			return nil, err
		}
		contactLabel = "Additional Guild Contact"
	}

	return corpus.Map(
		corpus.Pair{Key: "Ally", Value: corpus.Scalar(ally)},
		corpus.Pair{Key: "Rival", Value: corpus.Scalar(rival)},
		corpus.Pair{Key: contactLabel, Value: corpus.Scalar(contact)},
	), nil
}

// dimirContacts picks a secondary guild, one ally from the inline pool, and
// an ally/rival pair from the secondary guild's own contact pool
func (e *engine) dimirContacts(node *corpus.Node) (*corpus.Node, error) {
	allyNode, ok := node.Child("Ally")
	if !ok || allyNode.Kind() != corpus.KindList {
		return nil, errors.MissingCorpusField("dimircontacts node needs an Ally list")
	}
	guilds, ok := node.Child("Guilds")
	if !ok || guilds.Kind() != corpus.KindMap {
		return nil, errors.MissingCorpusField("dimircontacts node needs a Guilds mapping")
	}

	ally, err := e.dice.PickOne(allyNode.Strings())
	if err != nil {
		return nil, err
	}

	guild, err := e.dice.PickOne(guilds.Keys())
	if err != nil {
		return nil, err
	}
	poolNode, _ := guilds.Child(guild)
	if poolNode.Kind() != corpus.KindList {
		return nil, errors.MissingCorpusFieldf("guild %q contact pool must be a list", guild)
	}
	pool := poolNode.Strings()

	secondAlly, err := e.dice.PickOne(pool)
	if err != nil {
		return nil, err
	}
	rival, err := e.dice.PickOne(pool)
	if err != nil {
		return nil, err
	}

	return corpus.Map(
		corpus.Pair{Key: "Ally", Value: corpus.Scalar(ally)},
		corpus.Pair{Key: "Secondary Guild", Value: corpus.Scalar(guild)},
		corpus.Pair{Key: "Secondary Guild Ally", Value: corpus.Scalar(secondAlly)},
		corpus.Pair{Key: "Secondary Guild Rival", Value: corpus.Scalar(rival)},
	), nil
}
