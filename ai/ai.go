package ai

import (
	"fmt"
	"math/rand"

	"github.com/gopherd/log"

	"github.com/gopherd/landlord/poker"
)

// 一个 3 人斗地主的 AI
type AI interface {
	// 设置地主位置
	SetLandlord(Position)
	// 设置自己的位置
	SetSelf(Position)
	// 设置玩家剩余手牌数
	SetLeft(Position, int)
	// 玩家出牌
	Play(pos Position, cards poker.Cards) error
	// 建议主动出牌
	RecommendPlay() (poker.Cards, error)
	// 建议跟牌, 返回空表示不出
	RecommendFollow(last poker.Combo, owner Position) (poker.Cards, error)
	// 准备开始出牌了
	Start(hand poker.Cards)
	// 结束
	Stop()
}

// 从可选动作中选择一个, state 为状态特征
type Policy interface {
	Pick(state []int, actions []int) int
}

type PolicyFunc func(state []int, actions []int) int

func (f PolicyFunc) Pick(state []int, actions []int) int { return f(state, actions) }

// 总是选择第一个动作
var FirstPolicy = PolicyFunc(func(_ []int, actions []int) int { return actions[0] })

// 随机选择
func RandomPolicy(r *rand.Rand) Policy {
	return PolicyFunc(func(_ []int, actions []int) int {
		return actions[r.Intn(len(actions))]
	})
}

const (
	landlordHandSize = 20
	farmerHandSize   = 17
)

// 基于拆牌的 AI, 由 Policy 在拆牌结果中做选择
type Robot struct {
	// 地主位置
	landlord Position
	// 自己的位置
	self Position
	// 自己的手牌
	hand poker.Cards
	// 各玩家剩余牌数
	left [NumPlayer]int

	policy Policy
	opts   Options
}

var _ AI = (*Robot)(nil)

func NewRobot(policy Policy, opts Options) *Robot {
	if policy == nil {
		policy = FirstPolicy
	}
	return &Robot{
		landlord: BadPosition,
		self:     BadPosition,
		policy:   policy,
		opts:     opts,
	}
}

func (r *Robot) SetLandlord(pos Position) { r.landlord = pos }
func (r *Robot) SetSelf(pos Position)     { r.self = pos }

func (r *Robot) SetLeft(pos Position, n int) {
	if pos.Valid() {
		r.left[pos] = n
	}
}

func (r *Robot) Hand() poker.Cards { return r.hand }

func (r *Robot) Start(hand poker.Cards) {
	r.hand = hand.Clone()
	r.hand.Sort()
	for i := range r.left {
		if Position(i) == r.landlord {
			r.left[i] = landlordHandSize
		} else {
			r.left[i] = farmerHandSize
		}
	}
	if r.self.Valid() {
		r.left[r.self] = len(r.hand)
	}
}

func (r *Robot) Stop() {
	r.hand = nil
}

// 记录出牌结果
func (r *Robot) Play(pos Position, cards poker.Cards) error {
	log.Debug().Any("pos", pos).Any("cards", cards).Print("Robot Play")
	if !pos.Valid() {
		return fmt.Errorf("%w: bad position %d", ErrIllegalPlay, pos)
	}
	if pos == r.self {
		hand, ok := r.hand.Remove(cards)
		if !ok {
			return fmt.Errorf("%w: %v not in hand", ErrIllegalPlay, cards)
		}
		r.hand = hand
	}
	r.left[pos] = max(r.left[pos]-len(cards), 0)
	return nil
}

func (r *Robot) identity() Identity { return r.self.Identity(r.landlord) }

// 建议主动出牌
func (r *Robot) RecommendPlay() (poker.Cards, error) {
	ph := DecomposeForLead(r.hand, r.opts)
	handP, handN := r.left[r.self.Prev()], r.left[r.self.Next()]
	actions := PlayActions(&ph, r.identity(), handP, handN)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: empty hand", ErrInvalidAction)
	}
	state := NewPlayState(&ph, r.identity(), handP, handN)
	codes := make([]int, len(actions))
	for i, a := range actions {
		codes[i] = int(a)
	}
	action := PlayAction(r.policy.Pick(state[:], codes))
	if !containsCode(codes, int(action)) {
		return nil, fmt.Errorf("%w: play %d not offered", ErrInvalidAction, action)
	}
	cards, err := ExecutePlay(&ph, action)
	if err != nil {
		return nil, err
	}
	if !poker.Classify(cards).IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrIllegalPlay, cards)
	}
	log.Debug().Any("action", action).Any("cards", cards).Print("Robot RecommendPlay")
	return cards, nil
}

// 建议跟牌, last 为不出时改为主动出牌
func (r *Robot) RecommendFollow(last poker.Combo, owner Position) (poker.Cards, error) {
	if last.IsPass() || owner == r.self {
		return r.RecommendPlay()
	}
	fr := DecomposeForFollow(r.hand, last, r.opts)
	handP, handN := r.left[r.self.Prev()], r.left[r.self.Next()]
	actions := FollowActions(&fr)
	state := NewFollowState(&fr, r.identity(), owner.Identity(r.landlord), handP, handN, last.Len())
	codes := make([]int, len(actions))
	for i, a := range actions {
		codes[i] = int(a)
	}
	action := FollowAction(r.policy.Pick(state[:], codes))
	if !containsCode(codes, int(action)) {
		return nil, fmt.Errorf("%w: follow %d not offered", ErrInvalidAction, action)
	}
	cards, err := ExecuteFollow(&fr, action)
	if err != nil {
		return nil, err
	}
	if len(cards) > 0 && !poker.Classify(cards).GreaterThan(last) {
		return nil, fmt.Errorf("%w: %v can not beat %v", ErrIllegalPlay, cards, last)
	}
	log.Debug().Any("action", action).Any("cards", cards).Print("Robot RecommendFollow")
	return cards, nil
}

func containsCode(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
