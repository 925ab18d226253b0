// Virtual keys and the parallel code-point/glyph tables of the typewriter V1
// layout. Entry i of codePoints and glyphIndices always describes the same
// character, VKSpace+i.

package typewriter

// Control keys. These never reach the glyph pipeline.
const (
	VKNone VirtualKey = iota
	VKEsc
	VKInsert
	VKDelete
	VKBackspace
	VKHome
	VKEnd
	VKCapsLock
	VKTab
	VKEnter
	VKPageUp
	VKPageDown
	VKUp
	VKDown
	VKLeft
	VKRight
	VKF1
	VKF2
	VKF3
	VKF4
	VKF5
	VKF6
	VKF7
	VKF8
	VKF9
	VKF10
	VKSys
	VKLang
)

// Printable keys, in the order of the code-point and glyph tables.
const (
	VKSpace               VirtualKey = iota + PrintableOffset // space
	VKExclaim                                                 // !
	VKQuoteDbl                                                // "
	VKHash                                                    // #
	VKDollar                                                  // $
	VKPercent                                                 // %
	VKAmpersand                                               // &
	VKApostrophe                                              // '
	VKLeftParen                                               // (
	VKRightParen                                              // )
	VKAsterisk                                                // *
	VKPlus                                                    // +
	VKComma                                                   // ,
	VKMinus                                                   // -
	VKDot                                                     // .
	VKSlash                                                   // /
	VK0                                                       // 0
	VK1                                                       // 1
	VK2                                                       // 2
	VK3                                                       // 3
	VK4                                                       // 4
	VK5                                                       // 5
	VK6                                                       // 6
	VK7                                                       // 7
	VK8                                                       // 8
	VK9                                                       // 9
	VKColon                                                   // :
	VKSemicolon                                               // ;
	VKLess                                                    // <
	VKEqual                                                   // =
	VKGreater                                                 // >
	VKQuestion                                                // ?
	VKAt                                                      // @
	VKCapitalA                                                // A
	VKCapitalB                                                // B
	VKCapitalC                                                // C
	VKCapitalD                                                // D
	VKCapitalE                                                // E
	VKCapitalF                                                // F
	VKCapitalG                                                // G
	VKCapitalH                                                // H
	VKCapitalI                                                // I
	VKCapitalJ                                                // J
	VKCapitalK                                                // K
	VKCapitalL                                                // L
	VKCapitalM                                                // M
	VKCapitalN                                                // N
	VKCapitalO                                                // O
	VKCapitalP                                                // P
	VKCapitalQ                                                // Q
	VKCapitalR                                                // R
	VKCapitalS                                                // S
	VKCapitalT                                                // T
	VKCapitalU                                                // U
	VKCapitalV                                                // V
	VKCapitalW                                                // W
	VKCapitalX                                                // X
	VKCapitalY                                                // Y
	VKCapitalZ                                                // Z
	VKLeftBracket                                             // [
	VKBackslash                                               // \
	VKRightBracket                                            // ]
	VKCaret                                                   // ^
	VKUnderscore                                              // _
	VKGraveAccent                                             // `
	VKSmallA                                                  // a
	VKSmallB                                                  // b
	VKSmallC                                                  // c
	VKSmallD                                                  // d
	VKSmallE                                                  // e
	VKSmallF                                                  // f
	VKSmallG                                                  // g
	VKSmallH                                                  // h
	VKSmallI                                                  // i
	VKSmallJ                                                  // j
	VKSmallK                                                  // k
	VKSmallL                                                  // l
	VKSmallM                                                  // m
	VKSmallN                                                  // n
	VKSmallO                                                  // o
	VKSmallP                                                  // p
	VKSmallQ                                                  // q
	VKSmallR                                                  // r
	VKSmallS                                                  // s
	VKSmallT                                                  // t
	VKSmallU                                                  // u
	VKSmallV                                                  // v
	VKSmallW                                                  // w
	VKSmallX                                                  // x
	VKSmallY                                                  // y
	VKSmallZ                                                  // z
	VKLeftBrace                                               // {
	VKVerticalBar                                             // |
	VKRightBrace                                              // }
	VKTilde                                                   // ~
	VKBullet                                                  // •
	VKGraveSmallA                                             // à
	VKGraveSmallE                                             // è
	VKGraveSmallI                                             // ì
	VKGraveSmallO                                             // ò
	VKGraveSmallU                                             // ù
	VKAcuteSmallA                                             // á
	VKAcuteSmallE                                             // é
	VKAcuteSmallI                                             // í
	VKAcuteSmallO                                             // ó
	VKAcuteSmallU                                             // ú
	VKAcuteSmallY                                             // ý
	VKGraveCapitalA                                           // À
	VKGraveCapitalE                                           // È
	VKGraveCapitalI                                           // Ì
	VKGraveCapitalO                                           // Ò
	VKGraveCapitalU                                           // Ù
	VKAcuteCapitalA                                           // Á
	VKAcuteCapitalE                                           // É
	VKAcuteCapitalI                                           // Í
	VKAcuteCapitalO                                           // Ó
	VKAcuteCapitalU                                           // Ú
	VKAcuteCapitalY                                           // Ý
	VKCapitalThorn                                            // Þ
	VKSmallThorn                                              // þ
	VKUmlautSmallA                                            // ä
	VKUmlautSmallE                                            // ë
	VKUmlautSmallI                                            // ï
	VKUmlautSmallO                                            // ö
	VKUmlautSmallU                                            // ü
	VKUmlautSmallY                                            // ÿ
	VKUmlautCapitalA                                          // Ä
	VKUmlautCapitalE                                          // Ë
	VKUmlautCapitalI                                          // Ï
	VKUmlautCapitalO                                          // Ö
	VKUmlautCapitalU                                          // Ü
	VKUmlautCapitalY                                          // Ÿ
	VKEth                                                     // Ð
	VKMultiplication                                          // ×
	VKCaretSmallA                                             // â
	VKCaretSmallE                                             // ê
	VKCaretSmallI                                             // î
	VKCaretSmallO                                             // ô
	VKCaretSmallU                                             // û
	VKCaretCapitalA                                           // Â
	VKCaretCapitalE                                           // Ê
	VKCaretCapitalI                                           // Î
	VKCaretCapitalO                                           // Ô
	VKCaretCapitalU                                           // Û
	VKCedillaSmallC                                           // ç
	VKCedillaCapitalC                                         // Ç
	VKTildeSmallA                                             // ã
	VKTildeSmallO                                             // õ
	VKTildeSmallN                                             // ñ
	VKTildeCapitalA                                           // Ã
	VKTildeCapitalO                                           // Õ
	VKTildeCapitalN                                           // Ñ
	VKEszett                                                  // ß
	VKMediumShade                                             // ▒
	VKExclaimInv                                              // ¡
	VKCent                                                    // ¢
	VKPound                                                   // £
	VKEuro                                                    // €
	VKYen                                                     // ¥
	VKCaronCapitalS                                           // Š
	VKSection                                                 // §
	VKCaronSmallS                                             // š
	VKCopyright                                               // ©
	VKOrdinalA                                                // ª
	VKDblLeftAngle                                            // «
	VKNegation                                                // ¬
	VKCurrency                                                // ¤
	VKRegistered                                              // ®
	VKMacron                                                  // ¯
	VKDegree                                                  // °
	VKPlusMinus                                               // ±
	VKSuperscript2                                            // ²
	VKSuperscript3                                            // ³
	VKCaronCapitalZ                                           // Ž
	VKMu                                                      // µ
	VKPilcrow                                                 // ¶
	VKMiddleDot                                               // ·
	VKCaronSmallZ                                             // ž
	VKSuperscript1                                            // ¹
	VKOrdinalO                                                // º
	VKDblRightAngle                                           // »
	VKCapitalOE                                               // Œ
	VKSmallOE                                                 // œ
	VKQuestionInv                                             // ¿
	VKSmallAE                                                 // æ
	VKSmallOSlash                                             // ø
	VKSmallARing                                              // å
	VKCapitalAE                                               // Æ
	VKCapitalOSlash                                           // Ø
	VKCapitalARing                                            // Å
	VKSmallPi                                                 // π
	VKNotEqual                                                // ≠
	VKLessEqual                                               // ≤
	VKGreaterEqual                                            // ≥
	VKSquare                                                  // ■
	VKDiamond                                                 // ◆
	VKOneQuarter                                              // ¼
	VKOneHalf                                                 // ½
	VKThreeQuarters                                           // ¾
	VKBrokenBar                                               // ¦
	VKDiaeresis                                               // ¨
	VKCedilla                                                 // ¸
	VKSmallFHook                                              // ƒ
	VKDagger                                                  // †
	VKDoubleDagger                                            // ‡
	VKPerMille                                                // ‰
	VKTrademark                                               // ™
	VKEllipsis                                                // …
	VKLeftAngle                                               // ‹
	VKRightAngle                                              // ›
	VKQuoteDblLeft                                            // “
	VKQuoteDblRight                                           // ”
	VKQuoteDblLow                                             // „
	VKQuoteDblLowReversed                                     // ⹂
	VKCommaReversed                                           // ⹁
	VKBreveCapitalG                                           // Ğ
	VKBreveSmallG                                             // ğ
	VKDottedCapitalI                                          // İ
	VKDotlessSmallI                                           // ı
	VKCedillaCapitalS                                         // Ş
	VKCedillaSmallS                                           // ş
	VKReplacement                                             // �
)

// vkCount is one past the last defined VirtualKey.
const vkCount = int(VKReplacement) + 1

var controlNames = [PrintableOffset]string{
	"none",
	"esc",
	"insert",
	"delete",
	"backspace",
	"home",
	"end",
	"capslock",
	"tab",
	"enter",
	"pageup",
	"pagedown",
	"up",
	"down",
	"left",
	"right",
	"f1",
	"f2",
	"f3",
	"f4",
	"f5",
	"f6",
	"f7",
	"f8",
	"f9",
	"f10",
	"sys",
	"lang",
}

// codePoints holds the Unicode scalar stored for each printable key.
var codePoints = [...]rune{
	0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x0026, 0x0027,
	0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F,
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037,
	0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F,
	0x0040, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047,
	0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F,
	0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057,
	0x0058, 0x0059, 0x005A, 0x005B, 0x005C, 0x005D, 0x005E, 0x005F,
	0x0060, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067,
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F,
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077,
	0x0078, 0x0079, 0x007A, 0x007B, 0x007C, 0x007D, 0x007E, 0x2022,
	0x00E0, 0x00E8, 0x00EC, 0x00F2, 0x00F9, 0x00E1, 0x00E9, 0x00ED,
	0x00F3, 0x00FA, 0x00FD, 0x00C0, 0x00C8, 0x00CC, 0x00D2, 0x00D9,
	0x00C1, 0x00C9, 0x00CD, 0x00D3, 0x00DA, 0x00DD, 0x00DE, 0x00FE,
	0x00E4, 0x00EB, 0x00EF, 0x00F6, 0x00FC, 0x00FF, 0x00C4, 0x00CB,
	0x00CF, 0x00D6, 0x00DC, 0x0178, 0x00D0, 0x00D7, 0x00E2, 0x00EA,
	0x00EE, 0x00F4, 0x00FB, 0x00C2, 0x00CA, 0x00CE, 0x00D4, 0x00DB,
	0x00E7, 0x00C7, 0x00E3, 0x00F5, 0x00F1, 0x00C3, 0x00D5, 0x00D1,
	0x00DF, 0x2592, 0x00A1, 0x00A2, 0x00A3, 0x20AC, 0x00A5, 0x0160,
	0x00A7, 0x0161, 0x00A9, 0x00AA, 0x00AB, 0x00AC, 0x00A4, 0x00AE,
	0x00AF, 0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x017D, 0x00B5, 0x00B6,
	0x00B7, 0x017E, 0x00B9, 0x00BA, 0x00BB, 0x0152, 0x0153, 0x00BF,
	0x00E6, 0x00F8, 0x00E5, 0x00C6, 0x00D8, 0x00C5, 0x03C0, 0x2260,
	0x2264, 0x2265, 0x25A0, 0x25C6, 0x00BC, 0x00BD, 0x00BE, 0x00A6,
	0x00A8, 0x00B8, 0x0192, 0x2020, 0x2021, 0x2030, 0x2122, 0x2026,
	0x2039, 0x203A, 0x201C, 0x201D, 0x201E, 0x2E42, 0x2E41, 0x011E,
	0x011F, 0x0130, 0x0131, 0x015E, 0x015F, 0xFFFD,
}

// glyphIndices holds the font cell used to draw each printable key.
var glyphIndices = [...]uint8{
	32, 33, 34, 35, 36, 37, 38, 39,
	40, 41, 42, 43, 44, 45, 46, 47,
	48, 49, 50, 51, 52, 53, 54, 55,
	56, 57, 58, 59, 60, 61, 62, 63,
	64, 65, 66, 67, 68, 69, 70, 71,
	72, 73, 74, 75, 76, 77, 78, 79,
	80, 81, 82, 83, 84, 85, 86, 87,
	88, 89, 90, 91, 92, 93, 94, 95,
	96, 97, 98, 99, 100, 101, 102, 103,
	104, 105, 106, 107, 108, 109, 110, 111,
	112, 113, 114, 115, 116, 117, 118, 119,
	120, 121, 122, 123, 124, 125, 126, 127,
	224, 232, 236, 242, 249, 225, 233, 237,
	243, 250, 253, 128, 136, 140, 146, 153,
	129, 137, 141, 147, 154, 157, 158, 254,
	228, 235, 239, 246, 252, 255, 132, 139,
	143, 150, 156, 190, 144, 151, 226, 234,
	238, 244, 251, 130, 138, 142, 148, 155,
	231, 135, 227, 245, 241, 131, 149, 145,
	159, 160, 161, 162, 163, 164, 165, 166,
	167, 168, 169, 170, 171, 172, 173, 174,
	175, 176, 177, 178, 179, 180, 181, 182,
	183, 184, 185, 186, 187, 188, 189, 191,
	230, 248, 229, 134, 152, 133, 1, 2,
	3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18,
	19, 20, 21, 22, 23, 24, 25, 26,
	27, 28, 29, 30, 31, 0,
}

// The two tables must describe the same characters, entry for entry.
var (
	_ [len(codePoints) - len(glyphIndices)]struct{}
	_ [len(glyphIndices) - len(codePoints)]struct{}
	_ [len(codePoints) - (vkCount - PrintableOffset)]struct{}
	_ [(vkCount - PrintableOffset) - len(codePoints)]struct{}
)
