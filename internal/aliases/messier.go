package aliases

// messierEquivalents maps each Messier number to its NGC or IC designation.
// M40 (Winnecke 4) and M45 (the Pleiades) have no NGC/IC number and are
// deliberately absent.
var messierEquivalents = map[string]string{
	"M1":   "NGC1952",
	"M2":   "NGC7089",
	"M3":   "NGC5272",
	"M4":   "NGC6121",
	"M5":   "NGC5904",
	"M6":   "NGC6405",
	"M7":   "NGC6475",
	"M8":   "NGC6523",
	"M9":   "NGC6333",
	"M10":  "NGC6254",
	"M11":  "NGC6705",
	"M12":  "NGC6218",
	"M13":  "NGC6205",
	"M14":  "NGC6402",
	"M15":  "NGC7078",
	"M16":  "NGC6611",
	"M17":  "NGC6618",
	"M18":  "NGC6613",
	"M19":  "NGC6273",
	"M20":  "NGC6514",
	"M21":  "NGC6531",
	"M22":  "NGC6656",
	"M23":  "NGC6494",
	"M24":  "IC4715",
	"M25":  "IC4725",
	"M26":  "NGC6694",
	"M27":  "NGC6853",
	"M28":  "NGC6626",
	"M29":  "NGC6913",
	"M30":  "NGC7099",
	"M31":  "NGC224",
	"M32":  "NGC221",
	"M33":  "NGC598",
	"M34":  "NGC1039",
	"M35":  "NGC2168",
	"M36":  "NGC1960",
	"M37":  "NGC2099",
	"M38":  "NGC1912",
	"M39":  "NGC7092",
	"M41":  "NGC2287",
	"M42":  "NGC1976",
	"M43":  "NGC1982",
	"M44":  "NGC2632",
	"M46":  "NGC2437",
	"M47":  "NGC2422",
	"M48":  "NGC2548",
	"M49":  "NGC4472",
	"M50":  "NGC2323",
	"M51":  "NGC5194",
	"M52":  "NGC7654",
	"M53":  "NGC5024",
	"M54":  "NGC6715",
	"M55":  "NGC6809",
	"M56":  "NGC6779",
	"M57":  "NGC6720",
	"M58":  "NGC4579",
	"M59":  "NGC4621",
	"M60":  "NGC4649",
	"M61":  "NGC4303",
	"M62":  "NGC6266",
	"M63":  "NGC5055",
	"M64":  "NGC4826",
	"M65":  "NGC3623",
	"M66":  "NGC3627",
	"M67":  "NGC2682",
	"M68":  "NGC4590",
	"M69":  "NGC6637",
	"M70":  "NGC6681",
	"M71":  "NGC6838",
	"M72":  "NGC6981",
	"M73":  "NGC6994",
	"M74":  "NGC628",
	"M75":  "NGC6864",
	"M76":  "NGC650",
	"M77":  "NGC1068",
	"M78":  "NGC2068",
	"M79":  "NGC1904",
	"M80":  "NGC6093",
	"M81":  "NGC3031",
	"M82":  "NGC3034",
	"M83":  "NGC5236",
	"M84":  "NGC4374",
	"M85":  "NGC4382",
	"M86":  "NGC4406",
	"M87":  "NGC4486",
	"M88":  "NGC4501",
	"M89":  "NGC4552",
	"M90":  "NGC4569",
	"M91":  "NGC4548",
	"M92":  "NGC6341",
	"M93":  "NGC2447",
	"M94":  "NGC4736",
	"M95":  "NGC3351",
	"M96":  "NGC3368",
	"M97":  "NGC3587",
	"M98":  "NGC4192",
	"M99":  "NGC4254",
	"M100": "NGC4321",
	"M101": "NGC5457",
	"M102": "NGC5866",
	"M103": "NGC581",
	"M104": "NGC4594",
	"M105": "NGC3379",
	"M106": "NGC4258",
	"M107": "NGC6171",
	"M108": "NGC3556",
	"M109": "NGC3992",
	"M110": "NGC205",
}

// reverseEquivalents is built once at init from messierEquivalents.
var reverseEquivalents = func() map[string]string {
	reversed := make(map[string]string, len(messierEquivalents))
	for messier, other := range messierEquivalents {
		reversed[other] = messier
	}
	return reversed
}()

// Equivalent returns the cross-catalog designation for id, if one exists.
// Lookups work in both directions: M42 -> NGC1976 and NGC1976 -> M42.
func Equivalent(id string) (string, bool) {
	if other, ok := messierEquivalents[id]; ok {
		return other, true
	}
	if other, ok := reverseEquivalents[id]; ok {
		return other, true
	}
	return "", false
}
