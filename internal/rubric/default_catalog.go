package rubric

// RubricAcuteGeneral1 is the admission-fee standard currently in use. It is
// the only rubric the severity rule is defined for.
const RubricAcuteGeneral1 = "acute-general-1"

var binaryYesNo = []LevelOption{
	{Label: "なし", Value: 0},
	{Label: "あり", Value: 1},
}

var levels012 = []LevelOption{
	{Label: "できる", Value: 0},
	{Label: "何かにつかまればできる", Value: 1},
	{Label: "できない", Value: 2},
}

var levels01 = []LevelOption{
	{Label: "介助なし", Value: 0},
	{Label: "介助あり", Value: 1},
}

// Default returns the built-in item definition table for the acute general
// ward rubric. The table is compiled into the program and never mutated; the
// declaration order below is the form display order.
func Default() *Catalog {
	c, err := NewCatalog([]ItemDefinition{
		// A: monitoring and treatment
		{ID: "a_wound_care", Label: "創傷処置", Category: CategoryA, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "a_respiratory_care", Label: "呼吸ケア", Category: CategoryA, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "a_iv_lines_3", Label: "点滴ライン同時3本以上の管理", Category: CategoryA, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "a_ecg_monitor", Label: "心電図モニターの管理", Category: CategoryA, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "a_syringe_pump", Label: "シリンジポンプの管理", Category: CategoryA, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "a_transfusion", Label: "輸血や血液製剤の管理", Category: CategoryA, Points: 2, Input: InputBinary, Options: binaryYesNo},
		{ID: "a_specialized_treatment", Label: "専門的な治療・処置", Category: CategoryA, Points: 2, Input: InputBinary, Options: binaryYesNo},
		{ID: "a_emergency_admission", Label: "救急搬送後の入院", Category: CategoryA, Points: 2, Input: InputBinary, Options: binaryYesNo},

		// B: patient condition; the middle four are assistance-gated
		{ID: "b_rolling_over", Label: "寝返り", Category: CategoryB, Points: 2, Input: InputLeveled, Options: levels012},
		{ID: "b_transfer", Label: "移乗", Category: CategoryB, Points: 2, Input: InputLeveled, Options: levels012, HasAssistance: true},
		{ID: "b_oral_care", Label: "口腔清潔", Category: CategoryB, Points: 1, Input: InputLeveled, Options: levels01, HasAssistance: true},
		{ID: "b_eating", Label: "食事摂取", Category: CategoryB, Points: 2, Input: InputLeveled, Options: levels012, HasAssistance: true},
		{ID: "b_dressing", Label: "衣服の着脱", Category: CategoryB, Points: 2, Input: InputLeveled, Options: levels012, HasAssistance: true},
		{ID: "b_comprehension", Label: "診療・療養上の指示が通じる", Category: CategoryB, Points: 1, Input: InputLeveled, Options: []LevelOption{{Label: "はい", Value: 0}, {Label: "いいえ", Value: 1}}},
		{ID: "b_risk_behavior", Label: "危険行動", Category: CategoryB, Points: 2, Input: InputLeveled, Options: []LevelOption{{Label: "ない", Value: 0}, {Label: "ある", Value: 2}}},

		// C: surgical and medical procedures
		{ID: "c_craniotomy", Label: "開頭手術", Category: CategoryC, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "c_thoracotomy", Label: "開胸手術", Category: CategoryC, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "c_laparotomy", Label: "開腹手術", Category: CategoryC, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "c_bone_surgery", Label: "骨の手術", Category: CategoryC, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "c_laparoscopic", Label: "胸腔鏡・腹腔鏡手術", Category: CategoryC, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "c_general_anesthesia", Label: "全身麻酔・脊椎麻酔の手術", Category: CategoryC, Points: 1, Input: InputBinary, Options: binaryYesNo},
		{ID: "c_critical_internal", Label: "救命等に係る内科的治療", Category: CategoryC, Points: 1, Input: InputBinary, Options: binaryYesNo},
	})
	if err != nil {
		// The compiled-in table is validated by tests; a bad entry is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}
