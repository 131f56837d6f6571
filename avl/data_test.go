// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

var listShort = []string{
	"4201", "1254", "8608", "1639", "8950",
	"6740",
}

var listDuplicates = []string{
	"1720", "0506", "8382", "6774", "1247",
	"1250", "1264", "1258", "1255", "2247",
	"2004", "2194", "2644", "2169", "8133",
	"2136", "9651", "4079", "1042", "3579",
	"3630", "1427", "5843", "9549", "5433",
	"1274", "9034", "4724", "6179", "5072",
	"9272", "4030", "4205", "3363", "8582",
	"1720", "0506", "8382", "6774", "1042",

	"1042", "1042", "1042", "1042", "1042",
	"1042", "1042", "1042", "1042", "1042",
	"1042", "1042", "1042", "1042", "1042",
	"1042", "1042", "1042", "1042", "1042",
	"1042", "1042", "1042", "1042", "1042",
	"1042", "1042", "1042", "1042", "1042",
	"1042", "1042", "1042", "1042", "1042",
}

var listLong = []string{
	"8133", "2136", "9651", "4079", "1042",
	"3579", "3630", "1427", "5843", "9549",
	"5433", "1274", "9034", "4724", "6179",
	"5072", "9272", "4030", "4205", "3363",
	"8582", "1720", "0506", "8382", "6774",
	"3088", "2329", "9039", "6703", "1027",
	"7297", "6063", "4156", "1005", "0982",
	"3065", "2553", "0795", "8426", "2377",
	"0877", "9085", "5918", "2581", "7797",
	"3028", "5880", "3061", "5212", "6539",
	"1320", "3581", "3334", "4348", "2934",
	"8342", "8814", "8736", "1353", "3082",
	"9620", "0056", "5063", "1245", "7066",
	"7435", "2999", "7803", "1303", "1697",
	"0017", "4314", "9926", "7587", "2531",
	"8123", "5693", "7495", "9975", "5465",
	"4342", "7958", "7138", "9382", "0672",
	"5402", "0204", "2397", "2712", "0938",
	"9610", "3611", "2140", "4289", "9271",
	"4786", "4145", "1066", "4366", "6716",
	"8579", "1012", "5935", "8278", "5761",
	"1871", "6257", "2649", "8643", "1239",
	"3416", "6146", "7127", "9517", "5788",
	"9025", "6880", "9064", "4849", "4503",
	"4898", "6815", "8811", "6745", "6907",
	"7503", "9869", "5491", "9940", "5955",
	"3764", "3254", "8048", "5339", "2406",
	"3137", "0251", "0486", "4202", "1844",
	"1741", "7154", "4286", "5160", "9472",
	"2998", "1935", "4758", "6478", "9572",
	"9254", "6848", "3126", "1848", "7692",
	"2791", "1504", "3469", "9701", "5077",
	"7928", "7978", "5383", "4319", "8197",
	"9227", "1166", "4216", "0866", "1791",
	"5395", "4310", "4452", "6140", "1494",
	"8859", "3394", "5507", "7295", "5408",
	"7789", "8237", "6990", "6882", "8243",
	"8894", "4352", "6727", "7019", "3126",
	"3102", "2948", "8242", "5027", "8892",
	"3492", "1323", "1101", "4526", "5177",
	"6175", "6664", "2742", "6094", "9877",
	"2534", "2105", "6588", "9982", "3696",
	"3480", "2244", "7487", "2844", "3199",
	"5829", "6952", "6915", "0905", "7615",
}
