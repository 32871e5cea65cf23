package contract

// Contract is one signed player contract with its yearly salary schedule.
type Contract struct {
	ContractID      int64   `json:"contract_id"`
	PlayerID        string  `json:"player_id"`
	PlayerName      *string `json:"full_name,omitempty"`
	TeamID          *string `json:"team_id,omitempty"`
	ContractType    *string `json:"contract_type,omitempty"`
	SigningDate     *string `json:"signing_date,omitempty"`
	TotalValue      *int64  `json:"total_value,omitempty"`
	Years           *int    `json:"years,omitempty"`
	Year1Salary     *int64  `json:"year_1_salary,omitempty"`
	Year2Salary     *int64  `json:"year_2_salary,omitempty"`
	Year3Salary     *int64  `json:"year_3_salary,omitempty"`
	Year4Salary     *int64  `json:"year_4_salary,omitempty"`
	Year5Salary     *int64  `json:"year_5_salary,omitempty"`
	Year6Salary     *int64  `json:"year_6_salary,omitempty"`
	GuaranteedMoney *int64  `json:"guaranteed_money,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// Salaries returns the known yearly salaries in order, stopping at the first gap.
func (c Contract) Salaries() []int64 {
	var out []int64
	for _, v := range []*int64{c.Year1Salary, c.Year2Salary, c.Year3Salary, c.Year4Salary, c.Year5Salary, c.Year6Salary} {
		if v == nil {
			break
		}
		out = append(out, *v)
	}
	return out
}
