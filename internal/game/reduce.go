package game

// Reduce applies ev to s. Events that make no sense in the current mode
// return s unchanged with no effects.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case StartChallenge:
		if s.Mode == ModeChallenge {
			return s, nil
		}
		return startChallenge(s)

	case PlayAgain:
		if s.Mode != ModeFinished {
			return s, nil
		}
		return startChallenge(s)

	case LevelComplete:
		if s.Mode != ModeChallenge {
			return s, nil
		}
		if s.Level < s.maxLevel() {
			s.Level++
			return s, []Effect{AdvanceLevel{Level: s.Level}}
		}
		return finish(s, ev.Score)

	case GameOver:
		if s.Mode != ModeChallenge {
			return s, nil
		}
		return finish(s, ev.Score)

	case Navigate:
		if ev.To != ModeMenu && ev.To != ModeLibrary {
			return s, nil
		}
		var effects []Effect
		if s.Mode == ModeChallenge {
			effects = append(effects, EndSession{})
		}
		s.Mode = ev.To
		return s, effects

	case ToggleLanguage:
		s.Lang = s.Lang.Toggle()
		return s, []Effect{LanguageChanged{Lang: s.Lang}}
	}
	return s, nil
}

func startChallenge(s State) (State, []Effect) {
	s.Mode = ModeChallenge
	s.Level = 1
	return s, []Effect{StartSession{Level: 1, Lang: s.Lang}}
}

func finish(s State, score int) (State, []Effect) {
	s.Mode = ModeFinished
	s.LastScore = score
	return s, []Effect{EndSession{}}
}

func (s State) maxLevel() int {
	if s.MaxLevel < 1 {
		return DefaultMaxLevel
	}
	return s.MaxLevel
}
