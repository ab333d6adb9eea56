package ai

import (
	"sort"

	"github.com/gopherd/landlord/poker"
)

// 玩家位置

const NumPlayer = 3

type Position int8

const BadPosition Position = -1

func (pos Position) Valid() bool    { return pos >= 0 && pos < NumPlayer }
func (pos Position) Value() int     { return int(pos) }
func (pos Position) Next() Position { return Position((pos + 1) % NumPlayer) }
func (pos Position) Prev() Position { return Position((pos + NumPlayer - 1) % NumPlayer) }

// 相对于地主的身份
func (pos Position) Identity(landlord Position) Identity {
	return Identity((pos - landlord + NumPlayer) % NumPlayer)
}

func (pos Position) IsFriend(landlord, player Position) bool {
	return player == pos || (player != landlord && pos != landlord)
}

// 身份: 地主, 地主下家, 地主上家
type Identity int

const (
	Landlord Identity = iota
	FarmerNext
	FarmerPrev
)

func (id Identity) String() string {
	switch id {
	case Landlord:
		return "L"
	case FarmerNext:
		return "N"
	case FarmerPrev:
		return "P"
	}
	return "?"
}

// 主动出牌的动作编码
// 个位为牌型, 十位为强度: 1 最小, 2 中间, 3 最大
type PlayAction int

const (
	PlayMinSolo         PlayAction = 1  // 出最小的单牌
	PlayOtherSeqOrPlane PlayAction = 6  // 其它顺子或飞机
	PlayFourTakeTwo     PlayAction = 7  // 四带二
	PlayRocket          PlayAction = 34 // 王炸
	PlayMaxSolo         PlayAction = 41 // 出最大的单牌
)

const (
	kindSolo     = 1
	kindPair     = 2
	kindTrioTake = 3
	kindBomb     = 4
	kindSeqSolo5 = 5
)

// 牌型 kind 的动作, 强度不超过 maxStrength 且不超过该类牌的数量
func appendKind(actions []PlayAction, n, maxStrength, kind int) []PlayAction {
	for strength := 1; strength <= maxStrength && strength <= n; strength++ {
		actions = append(actions, PlayAction(strength*10+kind))
	}
	return actions
}

// 主动出牌时可选的动作
// handP 和 handN 分别为上家和下家的剩余手牌数
func PlayActions(ph *PlayHand, id Identity, handP, handN int) []PlayAction {
	var actions []PlayAction
	switch id {
	case FarmerNext:
		// 地主只剩一张时顶大, 否则队友只剩一张时送小
		if handP == 1 {
			actions = append(actions, PlayMaxSolo)
		} else if handN == 1 {
			actions = append(actions, PlayMinSolo)
		}
	case FarmerPrev:
		if handN == 1 {
			actions = append(actions, PlayMaxSolo)
		}
	}
	actions = appendKind(actions, len(ph.Solos), 3, kindSolo)
	actions = appendKind(actions, len(ph.Pairs), 3, kindPair)
	actions = appendKind(actions, len(ph.TriosTake), 2, kindTrioTake)
	actions = appendKind(actions, len(ph.Bombs), 2, kindBomb)
	actions = appendKind(actions, len(ph.SeqSolo5), 2, kindSeqSolo5)
	if ph.HasRocket {
		actions = append(actions, PlayRocket)
	}
	if len(ph.OtherSeq) > 0 || len(ph.PlanesTake) > 0 {
		actions = append(actions, PlayOtherSeqOrPlane)
	}
	if len(ph.BombsTake) > 0 {
		actions = append(actions, PlayFourTakeTwo)
	}
	return actions
}

// 跟牌的动作编码
type FollowAction int

const (
	FollowPass       FollowAction = 0 // 不出
	FollowSmallest   FollowAction = 1 // 代价最小的
	FollowSmaller    FollowAction = 2
	FollowLarger     FollowAction = 3
	FollowLargest    FollowAction = 4 // 代价最大的
	FollowForceMax   FollowAction = 5 // 同牌型中最大的
	FollowLittleBomb FollowAction = 6 // 最小的炸弹
	FollowBigBomb    FollowAction = 7 // 最大的炸弹
	FollowRocket     FollowAction = 8 // 王炸
)

// 跟牌时可选的动作, 不出总是可选的
func FollowActions(fr *FollowResult) []FollowAction {
	actions := []FollowAction{FollowPass}
	for a := FollowSmallest; a <= FollowLargest && int(a) <= len(fr.Actions); a++ {
		actions = append(actions, a)
	}
	if len(fr.Max) > 0 {
		actions = append(actions, FollowForceMax)
	}
	quads, rocket := splitBombs(fr.Bombs)
	switch {
	case len(quads) > 1:
		actions = append(actions, FollowLittleBomb, FollowBigBomb)
	case len(quads) == 1:
		actions = append(actions, FollowLittleBomb)
	}
	if rocket {
		actions = append(actions, FollowRocket)
	}
	return actions
}

func splitBombs(bombs []poker.Cards) (quads []poker.Cards, rocket bool) {
	for _, b := range bombs {
		if len(b) == 2 {
			rocket = true
		} else {
			quads = append(quads, b)
		}
	}
	return
}

// 主动出牌的状态特征, 供外部策略使用
//
//	0: 最小单牌 [0,3]
//	1: 最大单牌 [0,3]
//	2: 最小对子 [0,2]
//	3: 最大对子 [0,2]
//	4: 三张和飞机的数量 [0,2]
//	5: 最大的五张顺子 [0,2]
//	6: 是否有其它顺子或飞机 [0,1]
//	7: 炸弹数量 [0,2]
//	8: 是否有王炸 [0,1]
//	9: 身份 [0,2]
//	10: 上家剩余手牌数 [0,5]
//	11: 下家剩余手牌数 [0,5]
type PlayState [12]int

func NewPlayState(ph *PlayHand, id Identity, handP, handN int) PlayState {
	var s PlayState
	if len(ph.Solos) > 0 {
		s[0] = soloLevel(minMean(ph.Solos))
		s[1] = soloLevel(float64(maxCard(ph.Solos)))
	}
	if len(ph.Pairs) > 0 {
		s[2] = pairLevel(minMean(ph.Pairs))
		s[3] = pairLevel(float64(maxCard(ph.Pairs)))
	}
	s[4] = min(len(ph.Trios)+2*len(ph.Planes), 2)
	if len(ph.SeqSolo5) > 0 {
		s[5] = int(maxCard(ph.SeqSolo5)) / 5
	}
	if len(ph.OtherSeq) > 0 || len(ph.Planes) > 0 {
		s[6] = 1
	}
	s[7] = min(len(ph.Bombs), 2)
	if ph.HasRocket {
		s[8] = 1
	}
	s[9] = int(id)
	s[10] = clampHand(handP)
	s[11] = clampHand(handN)
	return s
}

// 跟牌的状态特征
//
//	0: 最小拆牌代价 [0,5]
//	1: 自己的身份 [0,2]
//	2: 出牌者的身份 [0,2]
//	3: 上家剩余手牌数 [0,5]
//	4: 下家剩余手牌数 [0,5]
//	5: 需要管上的牌的张数 [0,5]
type FollowState [6]int

func NewFollowState(fr *FollowResult, id, owner Identity, handP, handN, lastLen int) FollowState {
	return FollowState{
		min(fr.MinDelta, 5),
		int(id),
		int(owner),
		clampHand(handP),
		clampHand(handN),
		min(lastLen, 5),
	}
}

func clampHand(n int) int { return max(min(n-1, 5), 0) }

// 所有动作中最小的两张牌的平均值, 只有一张牌时为这张牌
func minMean(actions []poker.Cards) float64 {
	var all poker.Cards
	for _, a := range actions {
		all = append(all, a...)
	}
	sort.Sort(all)
	if len(all) == 1 {
		return float64(all[0])
	}
	return float64(all[0]+all[1]) / 2
}

func maxCard(actions []poker.Cards) poker.Card {
	var ret poker.Card
	for _, a := range actions {
		ret = max(ret, a.Max())
	}
	return ret
}

func soloLevel(v float64) int {
	switch {
	case v <= 4:
		return 0
	case v <= 8:
		return 1
	case v <= 12:
		return 2
	}
	return 3
}

func pairLevel(v float64) int {
	switch {
	case v <= 5:
		return 0
	case v <= 10:
		return 1
	}
	return 2
}
