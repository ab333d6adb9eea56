package ai

import (
	"runtime"

	"github.com/goccy/go-json"
)

// 拆牌细则
type Options struct {
	// 顺子最少长度
	MinLengthOfChain int `json:"min_length_of_chain" mapstructure:"min_length_of_chain"`
	// 连对最少长度
	MinLengthOfPairChain int `json:"min_length_of_pair_chain" mapstructure:"min_length_of_pair_chain"`
	// 飞机最少长度
	MinLengthOfPlane int `json:"min_length_of_plane" mapstructure:"min_length_of_plane"`
	// 出完所有牌的动作得分
	TerminalScore int `json:"terminal_score" mapstructure:"terminal_score"`
	// 拆炸弹的惩罚
	BombBreakPenalty int `json:"bomb_break_penalty" mapstructure:"bomb_break_penalty"`
	// 三张(飞机)带牌的奖励, 乘以连续长度
	AttachBonus int `json:"attach_bonus" mapstructure:"attach_bonus"`
	// 是否检查输入手牌的前置条件, 不满足时 panic
	Strict bool `json:"strict" mapstructure:"strict"`
	// 批量拆牌的并发数, 0 表示 CPU 数
	Parallelism int `json:"parallelism" mapstructure:"parallelism"`
}

var DefaultOptions = Options{
	MinLengthOfChain:     5,
	MinLengthOfPairChain: 3,
	MinLengthOfPlane:     2,
	TerminalScore:        10000,
	BombBreakPenalty:     1,
	AttachBonus:          2,
	Strict:               false,
	Parallelism:          0,
}

// 从 JSON 解析选项, 未出现的字段使用默认值
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		return DefaultOptions, err
	}
	return opts.normalize(), nil
}

// 最少长度不能低于牌型规则的要求, 否则枚举出的动作无法出牌
func (opts Options) normalize() Options {
	if opts.MinLengthOfChain < DefaultOptions.MinLengthOfChain {
		opts.MinLengthOfChain = DefaultOptions.MinLengthOfChain
	}
	if opts.MinLengthOfPairChain < DefaultOptions.MinLengthOfPairChain {
		opts.MinLengthOfPairChain = DefaultOptions.MinLengthOfPairChain
	}
	if opts.MinLengthOfPlane < DefaultOptions.MinLengthOfPlane {
		opts.MinLengthOfPlane = DefaultOptions.MinLengthOfPlane
	}
	if opts.TerminalScore <= 0 {
		opts.TerminalScore = DefaultOptions.TerminalScore
	}
	return opts
}

func (opts Options) parallelism() int {
	if opts.Parallelism > 0 {
		return opts.Parallelism
	}
	return runtime.NumCPU()
}
