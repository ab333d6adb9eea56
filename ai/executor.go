package ai

import (
	"errors"
	"fmt"

	"github.com/gopherd/landlord/poker"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrIllegalPlay   = errors.New("illegal play")
)

// 按强度从一类牌中选择: 1 第一个, 2 中间, 3 最后一个
func pickByStrength(actions []poker.Cards, strength int) (poker.Cards, bool) {
	n := len(actions)
	if n == 0 {
		return nil, false
	}
	switch strength {
	case 1:
		return actions[0], true
	case 2:
		return actions[n/2], true
	case 3:
		return actions[n-1], true
	}
	return nil, false
}

// 将主动出牌的动作编码转换为牌
func ExecutePlay(ph *PlayHand, action PlayAction) (poker.Cards, error) {
	switch action {
	case PlayMinSolo:
		if ph.MinSolo.Valid() {
			return poker.Cards{ph.MinSolo}, nil
		}
	case PlayMaxSolo:
		if ph.MaxSolo.Valid() {
			return poker.Cards{ph.MaxSolo}, nil
		}
	case PlayRocket:
		if ph.HasRocket {
			return poker.Cards{poker.CardG0, poker.CardG1}, nil
		}
	case PlayOtherSeqOrPlane:
		if len(ph.OtherSeq) > 0 {
			return ph.OtherSeq[0], nil
		}
		if len(ph.PlanesTake) > 0 {
			return ph.PlanesTake[0], nil
		}
	case PlayFourTakeTwo:
		if len(ph.BombsTake) > 0 {
			return ph.BombsTake[0], nil
		}
	default:
		var bucket []poker.Cards
		switch action % 10 {
		case kindSolo:
			bucket = ph.Solos
		case kindPair:
			bucket = ph.Pairs
		case kindTrioTake:
			bucket = ph.TriosTake
		case kindBomb:
			bucket = ph.Bombs
		case kindSeqSolo5:
			bucket = ph.SeqSolo5
		}
		if cards, ok := pickByStrength(bucket, int(action/10)); ok {
			return cards, nil
		}
	}
	return nil, fmt.Errorf("%w: play %d", ErrInvalidAction, action)
}

// 将跟牌的动作编码转换为牌, 不出返回空
func ExecuteFollow(fr *FollowResult, action FollowAction) (poker.Cards, error) {
	quads, rocket := splitBombs(fr.Bombs)
	n := len(fr.Actions)
	switch action {
	case FollowPass:
		return nil, nil
	case FollowSmallest, FollowSmaller, FollowLarger, FollowLargest:
		if n >= int(action) {
			index := [...]int{0, n / 2, int(float64(n) / 1.5), n - 1}[action-1]
			return fr.Actions[index], nil
		}
	case FollowForceMax:
		if len(fr.Max) > 0 {
			return fr.Max, nil
		}
	case FollowLittleBomb:
		if len(quads) > 0 {
			return quads[0], nil
		}
	case FollowBigBomb:
		if len(quads) > 0 {
			return quads[len(quads)-1], nil
		}
	case FollowRocket:
		if rocket {
			return poker.Cards{poker.CardG0, poker.CardG1}, nil
		}
	}
	return nil, fmt.Errorf("%w: follow %d", ErrInvalidAction, action)
}
