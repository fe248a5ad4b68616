// SPDX-License-Identifier: MIT
// Package: lexical/core
//
// pow10.go — precomputed powers of ten for the extended-precision paths.
//
// The cached powers cover 10^-348 .. 10^340 in steps of 8, with unit
// mantissa error; the residual factors come from smallPowersOfTen or exact
// uint64 multiplication. Values taken from the double-conversion library.

package core

// Table stride for the cached decimal powers.
const (
	firstPowerOfTen = -348
	stepPowerOfTen  = 8
)

// Uint64PowersOfTen holds the exact powers of ten representable in a uint64.
var Uint64PowersOfTen = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// smallPowersOfTen covers the residual factors 10^0 .. 10^7 exactly.
var smallPowersOfTen = [...]ExtFloat{
	{Mant: 1 << 63, Exp: -63},        // 1
	{Mant: 0xa << 60, Exp: -60},      // 1e1
	{Mant: 0x64 << 57, Exp: -57},     // 1e2
	{Mant: 0x3e8 << 54, Exp: -54},    // 1e3
	{Mant: 0x2710 << 50, Exp: -50},   // 1e4
	{Mant: 0x186a0 << 47, Exp: -47},  // 1e5
	{Mant: 0xf4240 << 44, Exp: -44},  // 1e6
	{Mant: 0x989680 << 40, Exp: -40}, // 1e7
}

// powersOfTen caches 10^(firstPowerOfTen + 8i) rounded to 64 mantissa bits.
var powersOfTen = [...]ExtFloat{
	{Mant: 0xfa8fd5a0081c0288, Exp: -1220}, // 10^-348
	{Mant: 0xbaaee17fa23ebf76, Exp: -1193}, // 10^-340
	{Mant: 0x8b16fb203055ac76, Exp: -1166}, // 10^-332
	{Mant: 0xcf42894a5dce35ea, Exp: -1140}, // 10^-324
	{Mant: 0x9a6bb0aa55653b2d, Exp: -1113}, // 10^-316
	{Mant: 0xe61acf033d1a45df, Exp: -1087}, // 10^-308
	{Mant: 0xab70fe17c79ac6ca, Exp: -1060}, // 10^-300
	{Mant: 0xff77b1fcbebcdc4f, Exp: -1034}, // 10^-292
	{Mant: 0xbe5691ef416bd60c, Exp: -1007}, // 10^-284
	{Mant: 0x8dd01fad907ffc3c, Exp: -980},  // 10^-276
	{Mant: 0xd3515c2831559a83, Exp: -954},  // 10^-268
	{Mant: 0x9d71ac8fada6c9b5, Exp: -927},  // 10^-260
	{Mant: 0xea9c227723ee8bcb, Exp: -901},  // 10^-252
	{Mant: 0xaecc49914078536d, Exp: -874},  // 10^-244
	{Mant: 0x823c12795db6ce57, Exp: -847},  // 10^-236
	{Mant: 0xc21094364dfb5637, Exp: -821},  // 10^-228
	{Mant: 0x9096ea6f3848984f, Exp: -794},  // 10^-220
	{Mant: 0xd77485cb25823ac7, Exp: -768},  // 10^-212
	{Mant: 0xa086cfcd97bf97f4, Exp: -741},  // 10^-204
	{Mant: 0xef340a98172aace5, Exp: -715},  // 10^-196
	{Mant: 0xb23867fb2a35b28e, Exp: -688},  // 10^-188
	{Mant: 0x84c8d4dfd2c63f3b, Exp: -661},  // 10^-180
	{Mant: 0xc5dd44271ad3cdba, Exp: -635},  // 10^-172
	{Mant: 0x936b9fcebb25c996, Exp: -608},  // 10^-164
	{Mant: 0xdbac6c247d62a584, Exp: -582},  // 10^-156
	{Mant: 0xa3ab66580d5fdaf6, Exp: -555},  // 10^-148
	{Mant: 0xf3e2f893dec3f126, Exp: -529},  // 10^-140
	{Mant: 0xb5b5ada8aaff80b8, Exp: -502},  // 10^-132
	{Mant: 0x87625f056c7c4a8b, Exp: -475},  // 10^-124
	{Mant: 0xc9bcff6034c13053, Exp: -449},  // 10^-116
	{Mant: 0x964e858c91ba2655, Exp: -422},  // 10^-108
	{Mant: 0xdff9772470297ebd, Exp: -396},  // 10^-100
	{Mant: 0xa6dfbd9fb8e5b88f, Exp: -369},  // 10^-92
	{Mant: 0xf8a95fcf88747d94, Exp: -343},  // 10^-84
	{Mant: 0xb94470938fa89bcf, Exp: -316},  // 10^-76
	{Mant: 0x8a08f0f8bf0f156b, Exp: -289},  // 10^-68
	{Mant: 0xcdb02555653131b6, Exp: -263},  // 10^-60
	{Mant: 0x993fe2c6d07b7fac, Exp: -236},  // 10^-52
	{Mant: 0xe45c10c42a2b3b06, Exp: -210},  // 10^-44
	{Mant: 0xaa242499697392d3, Exp: -183},  // 10^-36
	{Mant: 0xfd87b5f28300ca0e, Exp: -157},  // 10^-28
	{Mant: 0xbce5086492111aeb, Exp: -130},  // 10^-20
	{Mant: 0x8cbccc096f5088cc, Exp: -103},  // 10^-12
	{Mant: 0xd1b71758e219652c, Exp: -77},   // 10^-4
	{Mant: 0x9c40000000000000, Exp: -50},   // 10^4
	{Mant: 0xe8d4a51000000000, Exp: -24},   // 10^12
	{Mant: 0xad78ebc5ac620000, Exp: 3},     // 10^20
	{Mant: 0x813f3978f8940984, Exp: 30},    // 10^28
	{Mant: 0xc097ce7bc90715b3, Exp: 56},    // 10^36
	{Mant: 0x8f7e32ce7bea5c70, Exp: 83},    // 10^44
	{Mant: 0xd5d238a4abe98068, Exp: 109},   // 10^52
	{Mant: 0x9f4f2726179a2245, Exp: 136},   // 10^60
	{Mant: 0xed63a231d4c4fb27, Exp: 162},   // 10^68
	{Mant: 0xb0de65388cc8ada8, Exp: 189},   // 10^76
	{Mant: 0x83c7088e1aab65db, Exp: 216},   // 10^84
	{Mant: 0xc45d1df942711d9a, Exp: 242},   // 10^92
	{Mant: 0x924d692ca61be758, Exp: 269},   // 10^100
	{Mant: 0xda01ee641a708dea, Exp: 295},   // 10^108
	{Mant: 0xa26da3999aef774a, Exp: 322},   // 10^116
	{Mant: 0xf209787bb47d6b85, Exp: 348},   // 10^124
	{Mant: 0xb454e4a179dd1877, Exp: 375},   // 10^132
	{Mant: 0x865b86925b9bc5c2, Exp: 402},   // 10^140
	{Mant: 0xc83553c5c8965d3d, Exp: 428},   // 10^148
	{Mant: 0x952ab45cfa97a0b3, Exp: 455},   // 10^156
	{Mant: 0xde469fbd99a05fe3, Exp: 481},   // 10^164
	{Mant: 0xa59bc234db398c25, Exp: 508},   // 10^172
	{Mant: 0xf6c69a72a3989f5c, Exp: 534},   // 10^180
	{Mant: 0xb7dcbf5354e9bece, Exp: 561},   // 10^188
	{Mant: 0x88fcf317f22241e2, Exp: 588},   // 10^196
	{Mant: 0xcc20ce9bd35c78a5, Exp: 614},   // 10^204
	{Mant: 0x98165af37b2153df, Exp: 641},   // 10^212
	{Mant: 0xe2a0b5dc971f303a, Exp: 667},   // 10^220
	{Mant: 0xa8d9d1535ce3b396, Exp: 694},   // 10^228
	{Mant: 0xfb9b7cd9a4a7443c, Exp: 720},   // 10^236
	{Mant: 0xbb764c4ca7a44410, Exp: 747},   // 10^244
	{Mant: 0x8bab8eefb6409c1a, Exp: 774},   // 10^252
	{Mant: 0xd01fef10a657842c, Exp: 800},   // 10^260
	{Mant: 0x9b10a4e5e9913129, Exp: 827},   // 10^268
	{Mant: 0xe7109bfba19c0c9d, Exp: 853},   // 10^276
	{Mant: 0xac2820d9623bf429, Exp: 880},   // 10^284
	{Mant: 0x80444b5e7aa7cf85, Exp: 907},   // 10^292
	{Mant: 0xbf21e44003acdd2d, Exp: 933},   // 10^300
	{Mant: 0x8e679c2f5e44ff8f, Exp: 960},   // 10^308
	{Mant: 0xd433179d9c8cb841, Exp: 986},   // 10^316
	{Mant: 0x9e19db92b4e31ba9, Exp: 1013},  // 10^324
	{Mant: 0xeb96bf6ebadf77d9, Exp: 1039},  // 10^332
	{Mant: 0xaf87023b9bf0ee6b, Exp: 1066},  // 10^340
}
