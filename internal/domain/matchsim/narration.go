package matchsim

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Narration keys understood by the default catalogs.
const (
	KeyGoal             = "goal"
	KeyGoalAssisted     = "goal.assisted"
	KeyGoalDenied       = "goal.denied"
	KeySave             = "save"
	KeySaveNoKeeper     = "save.no_keeper"
	KeyMiss             = "miss"
	KeyCardYellow       = "card.yellow"
	KeyCardRed          = "card.red"
	KeyCardSecondYellow = "card.second_yellow"
	KeyCorner           = "corner"
	KeyCornerHeader     = "corner.header"
	KeyCornerBicycle    = "corner.bicycle"
	KeyCornerCleared    = "corner.cleared"
	KeyVARCheck         = "var.check"
	KeyVARPenalty       = "var.penalty"
	KeyVAROffside       = "var.offside"
	KeyVARFoul          = "var.foul"
	KeyVARClear         = "var.clear"
	KeyPenaltyScored    = "penalty.scored"
	KeyPenaltySaved     = "penalty.saved"
	KeyFoul             = "foul"
	KeyPost             = "post"
	KeySubstitution     = "substitution"
)

// Params fills {name} placeholders in a narration template.
type Params map[string]string

// Narrator renders the description text of a match event.
type Narrator interface {
	Narrate(lang language.Tag, key string, params Params) string
}

// CatalogNarrator serves templates from per-language catalogs, matching the
// requested tag against the supported set. The first catalog is the fallback.
type CatalogNarrator struct {
	matcher  language.Matcher
	catalogs []map[string]string
}

// NewCatalogNarrator returns a narrator with English and Turkish catalogs.
func NewCatalogNarrator() *CatalogNarrator {
	return NewCustomNarrator(
		[]language.Tag{language.English, language.Turkish},
		[]map[string]string{englishCatalog, turkishCatalog},
	)
}

// NewCustomNarrator pairs tags[i] with catalogs[i]; tags[0] is the fallback.
func NewCustomNarrator(tags []language.Tag, catalogs []map[string]string) *CatalogNarrator {
	if len(tags) == 0 || len(tags) != len(catalogs) {
		tags = []language.Tag{language.English}
		catalogs = []map[string]string{englishCatalog}
	}
	return &CatalogNarrator{
		matcher:  language.NewMatcher(tags),
		catalogs: catalogs,
	}
}

func (n *CatalogNarrator) Narrate(lang language.Tag, key string, params Params) string {
	_, index, confidence := n.matcher.Match(lang)
	if confidence == language.No || index < 0 || index >= len(n.catalogs) {
		index = 0
	}

	template, ok := n.catalogs[index][key]
	if !ok {
		template, ok = n.catalogs[0][key]
	}
	if !ok {
		return key
	}
	return render(template, params)
}

// ParseLanguage reads a BCP 47 tag, falling back to English.
func ParseLanguage(value string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.English
	}
	return tag
}

func render(template string, params Params) string {
	if len(params) == 0 {
		return template
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", params[k])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

var englishCatalog = map[string]string{
	KeyGoal:             "GOAL! {player} scores for {team}.",
	KeyGoalAssisted:     "GOAL! {player} finishes for {team}, set up by {assist}.",
	KeyGoalDenied:       "{player} is through on goal but is caught before the shot and {keeper} smothers it.",
	KeySave:             "{keeper} saves a strike from {player}.",
	KeySaveNoKeeper:     "{player}'s effort is blocked on the line.",
	KeyMiss:             "{player} shoots wide for {team}.",
	KeyCardYellow:       "Yellow card for {player} ({team}).",
	KeyCardRed:          "Straight red! {player} ({team}) is sent off.",
	KeyCardSecondYellow: "Second yellow for {player} ({team}), and off they go.",
	KeyCorner:           "Corner kick for {team}.",
	KeyCornerHeader:     "GOAL! {player} rises highest and heads the corner home for {team}.",
	KeyCornerBicycle:    "GOAL! A bicycle kick from {player} off the corner for {team}!",
	KeyCornerCleared:    "The corner is cleared away.",
	KeyVARCheck:         "VAR is checking a possible incident in the {team} attack.",
	KeyVARPenalty:       "After review the referee points to the spot. Penalty to {team}!",
	KeyVAROffside:       "VAR rules the {team} move offside.",
	KeyVARFoul:          "VAR confirms the foul against {team}. Free kick.",
	KeyVARClear:         "VAR check complete: no infringement, play on.",
	KeyPenaltyScored:    "GOAL! {player} converts the penalty for {team}.",
	KeyPenaltySaved:     "{keeper} saves the penalty from {player}!",
	KeyFoul:             "Foul by {player} ({team}).",
	KeyPost:             "{player} hits the post for {team}!",
	KeySubstitution:     "Substitution for {team}.",
}

var turkishCatalog = map[string]string{
	KeyGoal:             "GOL! {player}, {team} adına golü attı.",
	KeyGoalAssisted:     "GOL! {assist} pasında {player} topu ağlara gönderdi ({team}).",
	KeyGoalDenied:       "{player} kaleciyle karşı karşıya kaldı ama {keeper} topu kucakladı.",
	KeySave:             "{keeper}, {player} oyuncusunun şutunu kurtardı.",
	KeySaveNoKeeper:     "{player} oyuncusunun şutu çizgiden döndü.",
	KeyMiss:             "{player} şutunda top auta gitti ({team}).",
	KeyCardYellow:       "{player} ({team}) sarı kart gördü.",
	KeyCardRed:          "Direkt kırmızı! {player} ({team}) oyundan atıldı.",
	KeyCardSecondYellow: "{player} ({team}) ikinci sarıdan kırmızı kart gördü.",
	KeyCorner:           "{team} korner kazandı.",
	KeyCornerHeader:     "GOL! {player} kornerde kafayı vurdu ve topu ağlara gönderdi ({team}).",
	KeyCornerBicycle:    "GOL! {player} korner sonrası rövaşata ile attı ({team})!",
	KeyCornerCleared:    "Korner uzaklaştırıldı.",
	KeyVARCheck:         "VAR, {team} atağındaki pozisyonu inceliyor.",
	KeyVARPenalty:       "İnceleme sonrası hakem penaltı noktasını gösterdi. {team} lehine penaltı!",
	KeyVAROffside:       "VAR, {team} atağında ofsayt kararı verdi.",
	KeyVARFoul:          "VAR, {team} aleyhine faulü onayladı. Serbest vuruş.",
	KeyVARClear:         "VAR incelemesi tamamlandı, ihlal yok.",
	KeyPenaltyScored:    "GOL! {player} penaltıyı gole çevirdi ({team}).",
	KeyPenaltySaved:     "{keeper}, {player} oyuncusunun penaltısını kurtardı!",
	KeyFoul:             "{player} ({team}) faul yaptı.",
	KeyPost:             "{player} direğe nişanladı ({team})!",
	KeySubstitution:     "{team} oyuncu değişikliği yapıyor.",
}
