package chain

// SupplyReport summarizes the minted side of the chain file.
type SupplyReport struct {
	Blocks      int     `json:"blocks"`
	TopHeight   int64   `json:"top_height"`
	TotalMinted float64 `json:"total_minted"`
}

// Supply scans the whole chain file and totals the recorded rewards.
// Heights from previous runs restart at 1, so TopHeight is the maximum
// seen, not the line count.
func (s *Store) Supply() (SupplyReport, error) {
	blocks, err := s.ReadAll()
	if err != nil {
		return SupplyReport{}, err
	}

	var report SupplyReport
	for _, b := range blocks {
		report.Blocks++
		report.TotalMinted += b.Reward
		if b.Height > report.TopHeight {
			report.TopHeight = b.Height
		}
	}
	return report, nil
}
