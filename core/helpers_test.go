package core

import "github.com/huangsam/shotdash/schema"

// shot builds a record for one minute bucket with sensible defaults.
func shot(group, player string, minute, freq, pps float64) schema.ShotRecord {
	return schema.ShotRecord{
		Group:      group,
		Player:     player,
		MinStart:   minute - 0.5,
		MinMid:     minute,
		MinEnd:     minute + 0.5,
		ShotsCount: 10,
		ShotsMade:  5,
		ShotsFreq:  freq,
		ShotsAcc:   50,
		PlAcc:      48,
		PlPps:      pps,
	}
}

// threeRowFixture has two TOR rows and one BOS row.
func threeRowFixture() []schema.ShotRecord {
	return []schema.ShotRecord{
		shot("TOR", "Kyle Lowry", 1.5, 20, 110),
		shot("TOR", "Pascal Siakam", 2.5, 25, 100),
		shot("BOS", "Jayson Tatum", 1.5, 30, 115),
	}
}

func mustDataset(records []schema.ShotRecord) *Dataset {
	ds, err := NewDataset(records)
	if err != nil {
		panic(err)
	}
	return ds
}
