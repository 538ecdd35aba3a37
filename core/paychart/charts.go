package paychart

import "github.com/shopspring/decimal"

// HostChart returns the host pay chart: salary per ranking in beans and diamonds.
func HostChart() *Chart {
	return &Chart{Kind: KindHost, Rows: []Row{
		{Ranking: "V1", TargetBeans: 5000, SalaryBeans: 19110, SalaryDiamonds: 5497},
		{Ranking: "F", TargetBeans: 10000, SalaryBeans: 18900, SalaryDiamonds: 5215},
		{Ranking: "F+", TargetBeans: 20000, SalaryBeans: 37590, SalaryDiamonds: 10397},
		{Ranking: "E", TargetBeans: 30000, SalaryBeans: 56280, SalaryDiamonds: 15574},
		{Ranking: "E+", TargetBeans: 40000, SalaryBeans: 74970, SalaryDiamonds: 20738},
		{Ranking: "D", TargetBeans: 50000, SalaryBeans: 93450, SalaryDiamonds: 25862},
		{Ranking: "D+", TargetBeans: 60000, SalaryBeans: 112350, SalaryDiamonds: 31095},
		{Ranking: "C", TargetBeans: 70000, SalaryBeans: 131040, SalaryDiamonds: 36267},
		{Ranking: "C+", TargetBeans: 80000, SalaryBeans: 149250, SalaryDiamonds: 41310},
		{Ranking: "B", TargetBeans: 90000, SalaryBeans: 168000, SalaryDiamonds: 46504},
		{Ranking: "B+", TargetBeans: 100000, SalaryBeans: 185850, SalaryDiamonds: 51434},
		{Ranking: "A", TargetBeans: 110000, SalaryBeans: 220500, SalaryDiamonds: 61036},
		{Ranking: "A+", TargetBeans: 120000, SalaryBeans: 230700, SalaryDiamonds: 63850},
		{Ranking: "S1", TargetBeans: 130000, SalaryBeans: 236250, SalaryDiamonds: 65395},
		{Ranking: "S2", TargetBeans: 170000, SalaryBeans: 303450, SalaryDiamonds: 83996},
		{Ranking: "S3", TargetBeans: 250000, SalaryBeans: 441000, SalaryDiamonds: 122085},
		{Ranking: "S4", TargetBeans: 350000, SalaryBeans: 617440, SalaryDiamonds: 170925},
		{Ranking: "S5", TargetBeans: 450000, SalaryBeans: 793800, SalaryDiamonds: 219747},
		{Ranking: "S6", TargetBeans: 600000, SalaryBeans: 1024800, SalaryDiamonds: 283696},
		{Ranking: "S7", TargetBeans: 800000, SalaryBeans: 1354500, SalaryDiamonds: 374973},
		{Ranking: "S8", TargetBeans: 1000000, SalaryBeans: 1680000, SalaryDiamonds: 465089},
		{Ranking: "S9", TargetBeans: 1500000, SalaryBeans: 2478000, SalaryDiamonds: 686010},
		{Ranking: "S10", TargetBeans: 2000000, SalaryBeans: 3297000, SalaryDiamonds: 912743},
		{Ranking: "S11", TargetBeans: 3000000, SalaryBeans: 4956000, SalaryDiamonds: 1372025},
		{Ranking: "S12", TargetBeans: 4000000, SalaryBeans: 6426000, SalaryDiamonds: 1778985},
		{Ranking: "S13", TargetBeans: 5000000, SalaryBeans: 7720000, SalaryDiamonds: 2137216},
		{Ranking: "S14", TargetBeans: 6000000, SalaryBeans: 8568000, SalaryDiamonds: 2371977},
	}}
}

// AgencyChart returns the agency pay chart: remuneration per host ranking.
// Rankings from S6 up carry a $200 S bonus.
func AgencyChart() *Chart {
	return &Chart{Kind: KindAgency, Rows: []Row{
		agencyRow("V1", 5000, 0, 23, 4830, 1324),
		agencyRow("F", 10000, 0, 23, 4830, 1324),
		agencyRow("F+", 20000, 0, 45, 9450, 2605),
		agencyRow("E", 30000, 0, 67, 14070, 3888),
		agencyRow("E+", 40000, 0, 89, 18690, 5159),
		agencyRow("D", 50000, 0, 112, 23520, 6501),
		agencyRow("D+", 60000, 0, 134, 28140, 7782),
		agencyRow("C", 70000, 0, 156, 32760, 9053),
		agencyRow("C+", 80000, 0, 178, 37380, 10341),
		agencyRow("B", 90000, 0, 200, 42000, 11620),
		agencyRow("B+", 100000, 0, 221, 46410, 12839),
		agencyRow("A", 110000, 0, 243, 51030, 14118),
		agencyRow("A+", 120000, 0, 263, 55230, 15287),
		agencyRow("S1", 130000, 0, 281, 59010, 16334),
		agencyRow("S2", 170000, 0, 361, 75810, 20972),
		agencyRow("S3", 250000, 0, 525, 110250, 30518),
		agencyRow("S4", 350000, 0, 735, 154350, 42725),
		agencyRow("S5", 450000, 0, 945, 198450, 54934),
		agencyRow("S6", 600000, 200, 1420, 298200, 82550),
		agencyRow("S7", 800000, 200, 1813, 380730, 105388),
		agencyRow("S8", 1000000, 200, 2200, 462000, 127900),
		agencyRow("S9", 1500000, 200, 3150, 661500, 183124),
		agencyRow("S10", 2000000, 200, 4125, 866250, 239807),
		agencyRow("S11", 3000000, 200, 6100, 1281000, 354631),
		agencyRow("S12", 4000000, 200, 7850, 1648500, 456361),
		agencyRow("S13", 5000000, 200, 9400, 1974000, 546482),
		agencyRow("S14", 6000000, 200, 10400, 2184000, 604616),
	}}
}

func agencyRow(ranking string, target, bonus, usd, beans, diamonds int64) Row {
	return Row{
		Ranking:              ranking,
		TargetBeans:          target,
		AgencyBonusUSD:       decimal.NewFromInt(bonus),
		RemunerationUSD:      decimal.NewFromInt(usd),
		RemunerationBeans:    beans,
		RemunerationDiamonds: diamonds,
	}
}
