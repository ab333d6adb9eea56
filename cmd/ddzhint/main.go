package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/viper"

	"github.com/gopherd/landlord/ai"
	"github.com/gopherd/landlord/poker"
)

var (
	flagHand   = flag.String("hand", "", "hand cards, e.g. \"3 3 4 5 6 7 10 J Q K A 2 G\"")
	flagLast   = flag.String("last", "", "cards to beat, empty means leading")
	flagConfig = flag.String("config", "", "options file (json/yaml/toml)")
	flagDot    = flag.String("dot", "", "write the lead decomposition graph to this .dot file")
	flagAll    = flag.Bool("all", false, "list every legal play from the exhaustive matcher")
)

type leadOutput struct {
	Hand       string     `json:"hand"`
	Solos      []string   `json:"solos,omitempty"`
	Pairs      []string   `json:"pairs,omitempty"`
	Trios      []string   `json:"trios,omitempty"`
	Bombs      []string   `json:"bombs,omitempty"`
	SeqSolo5   []string   `json:"seq_solo5,omitempty"`
	OtherSeq   []string   `json:"other_seq,omitempty"`
	Planes     []string   `json:"planes,omitempty"`
	TriosTake  []string   `json:"trios_take,omitempty"`
	BombsTake  []string   `json:"bombs_take,omitempty"`
	PlanesTake []string   `json:"planes_take,omitempty"`
	HasRocket  bool       `json:"has_rocket"`
	MinSolo    string     `json:"min_solo"`
	MaxSolo    string     `json:"max_solo"`
	Actions    []int      `json:"actions"`
	Legal      []string   `json:"legal,omitempty"`
	Options    ai.Options `json:"options"`
}

type followOutput struct {
	Hand     string     `json:"hand"`
	Last     string     `json:"last"`
	Category string     `json:"category"`
	Bombs    []string   `json:"bombs,omitempty"`
	Actions  []string   `json:"actions,omitempty"`
	Deltas   []int      `json:"deltas,omitempty"`
	MinDelta int        `json:"min_delta"`
	Max      string     `json:"max,omitempty"`
	Codes    []int      `json:"codes"`
	Legal    []string   `json:"legal,omitempty"`
	Options  ai.Options `json:"options"`
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ddzhint:", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := loadOptions(*flagConfig)
	if err != nil {
		return err
	}
	hand, err := poker.ParseCards(*flagHand)
	if err != nil {
		return fmt.Errorf("parse hand: %w", err)
	}
	if err := hand.Check(); err != nil {
		return fmt.Errorf("bad hand: %w", err)
	}
	last, err := poker.ParseCards(*flagLast)
	if err != nil {
		return fmt.Errorf("parse last: %w", err)
	}
	if *flagDot != "" {
		if err := ai.WriteDot(*flagDot, "hand", hand, opts); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
	}

	var output any
	if len(last) == 0 {
		output = lead(hand, opts)
	} else {
		combo := poker.Classify(last)
		if !combo.IsValid() {
			return fmt.Errorf("last %q is not a legal play", *flagLast)
		}
		output = follow(hand, combo, opts)
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

// 默认选项 < 配置文件 < DDZ_ 开头的环境变量
func loadOptions(file string) (ai.Options, error) {
	v := viper.New()
	v.SetEnvPrefix("DDZ")
	v.AutomaticEnv()
	d := ai.DefaultOptions
	v.SetDefault("min_length_of_chain", d.MinLengthOfChain)
	v.SetDefault("min_length_of_pair_chain", d.MinLengthOfPairChain)
	v.SetDefault("min_length_of_plane", d.MinLengthOfPlane)
	v.SetDefault("terminal_score", d.TerminalScore)
	v.SetDefault("bomb_break_penalty", d.BombBreakPenalty)
	v.SetDefault("attach_bonus", d.AttachBonus)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("parallelism", d.Parallelism)
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return d, fmt.Errorf("read config: %w", err)
		}
	}
	var opts ai.Options
	if err := v.Unmarshal(&opts); err != nil {
		return d, fmt.Errorf("decode config: %w", err)
	}
	return opts, nil
}

func lead(hand poker.Cards, opts ai.Options) leadOutput {
	ph := ai.DecomposeForLead(hand, opts)
	out := leadOutput{
		Hand:       view(hand),
		Solos:      views(ph.Solos),
		Pairs:      views(ph.Pairs),
		Trios:      views(ph.Trios),
		Bombs:      views(ph.Bombs),
		SeqSolo5:   views(ph.SeqSolo5),
		OtherSeq:   views(ph.OtherSeq),
		Planes:     views(ph.Planes),
		TriosTake:  views(ph.TriosTake),
		BombsTake:  views(ph.BombsTake),
		PlanesTake: views(ph.PlanesTake),
		HasRocket:  ph.HasRocket,
		MinSolo:    ph.MinSolo.String(),
		MaxSolo:    ph.MaxSolo.String(),
		Options:    opts,
	}
	for _, a := range ai.PlayActions(&ph, ai.Landlord, 17, 17) {
		out.Actions = append(out.Actions, int(a))
	}
	if *flagAll {
		out.Legal = comboViews(ai.Match(hand, poker.PassCombo(), opts, 0))
	}
	return out
}

func follow(hand poker.Cards, last poker.Combo, opts ai.Options) followOutput {
	fr := ai.DecomposeForFollow(hand, last, opts)
	out := followOutput{
		Hand:     view(hand),
		Last:     view(last.Cards()),
		Category: last.Category().String(),
		Bombs:    views(fr.Bombs),
		Actions:  views(fr.Actions),
		Deltas:   fr.Deltas,
		MinDelta: fr.MinDelta,
		Max:      view(fr.Max),
		Options:  opts,
	}
	for _, a := range ai.FollowActions(&fr) {
		out.Codes = append(out.Codes, int(a))
	}
	if *flagAll {
		out.Legal = comboViews(ai.Match(hand, last, opts, 0))
	}
	return out
}

func view(cards poker.Cards) string { return strings.TrimSpace(cards.String()) }

func views(actions []poker.Cards) []string {
	var ret []string
	for _, a := range actions {
		ret = append(ret, view(a))
	}
	return ret
}

func comboViews(combos []poker.Combo) []string {
	var ret []string
	for _, c := range combos {
		ret = append(ret, view(c.Cards()))
	}
	return ret
}
