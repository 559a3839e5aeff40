package units

import (
	"fmt"
	"math"
	"strconv"
)

// fractionTolerance 小數部分與常用分數的容許誤差
const fractionTolerance = 0.015

// commonFraction 常用的廚房分數
type commonFraction struct {
	value float64
	text  string
}

// 由小到大排列，找到第一個落在容許誤差內的即採用
var commonFractions = []commonFraction{
	{1.0 / 8, "1/8"},
	{1.0 / 6, "1/6"},
	{1.0 / 5, "1/5"},
	{1.0 / 4, "1/4"},
	{1.0 / 3, "1/3"},
	{3.0 / 8, "3/8"},
	{2.0 / 5, "2/5"},
	{1.0 / 2, "1/2"},
	{3.0 / 5, "3/5"},
	{5.0 / 8, "5/8"},
	{2.0 / 3, "2/3"},
	{3.0 / 4, "3/4"},
	{4.0 / 5, "4/5"},
	{5.0 / 6, "5/6"},
	{7.0 / 8, "7/8"},
}

// FormatQuantity 將數值渲染成整數、常用分數或兩位小數。
// 純顯示函式，對所有有限非負輸入皆為決定性結果。
func FormatQuantity(value float64) string {
	whole := math.Floor(value)
	frac := value - whole

	// 接近整數時直接輸出整數
	if frac <= fractionTolerance {
		return strconv.FormatInt(int64(whole), 10)
	}
	if 1-frac <= fractionTolerance {
		return strconv.FormatInt(int64(whole)+1, 10)
	}

	for _, cf := range commonFractions {
		if math.Abs(frac-cf.value) <= fractionTolerance {
			if whole == 0 {
				return cf.text
			}
			return fmt.Sprintf("%d %s", int64(whole), cf.text)
		}
	}

	// 不是常用分數時四捨五入到兩位小數，並去掉多餘的尾數
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
