package nlp

import (
	"strconv"
	"strings"
)

// Цели массовой операции
const (
	TargetAll   = "all"
	TargetCount = "count"
)

// BulkInfo параметры массовой операции ("add biceps to all days")
type BulkInfo struct {
	IsBulk bool
	// Operation "add" либо "replace"
	Operation string
	Muscle    string
	// TargetDays TargetAll или TargetCount
	TargetDays string
	Count      int
	// CompleteChange полная смена фокуса шаблона ("change all ...")
	CompleteChange bool
}

// ExtractBulkInfo разбирает массовую операцию по нескольким дням
func (e *Extractor) ExtractBulkInfo(text string) BulkInfo {
	lower := strings.ToLower(text)
	info := BulkInfo{TargetDays: TargetAll}

	for _, indicator := range []string{"all days", "every day", "each day", "for all", "on all"} {
		if strings.Contains(lower, indicator) {
			info.IsBulk = true
			break
		}
	}

	for _, p := range e.cfg.specificCount {
		if m := p.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				info.IsBulk = true
				info.TargetDays = TargetCount
				info.Count = n
			}
			break
		}
	}

	if containsAny(lower, "change", "replace", "swap", "make") {
		info.Operation = "replace"
		if containsAny(lower, "change all", "make all", "create all") {
			info.CompleteChange = true
		}
	} else if containsAny(lower, "add", "include", "give", "put") {
		info.Operation = "add"
	}

	if muscle, ok := e.MatchMuscle(lower); ok {
		info.Muscle = muscle
	}
	return info
}
