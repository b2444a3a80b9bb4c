// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eval

import (
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// pawnPSQT through kingPSQT are the classic tapered piece-square tables
// (middle-game, end-game), indexed a8..h1 exactly like square.Square, so
// White's table applies unmodified and Black's is looked up with the
// square mirrored across the horizontal (s ^ 56).
var pawnPSQT = [square.N][2]Eval{
	0: {0, 0}, 1: {0, 0}, 2: {0, 0}, 3: {0, 0}, 4: {0, 0}, 5: {0, 0}, 6: {0, 0}, 7: {0, 0},
	8: {98, 178}, 9: {134, 173}, 10: {61, 158}, 11: {95, 134}, 12: {68, 147}, 13: {126, 132}, 14: {34, 165}, 15: {-11, 187},
	16: {-6, 94}, 17: {7, 100}, 18: {26, 85}, 19: {31, 67}, 20: {65, 56}, 21: {56, 53}, 22: {25, 82}, 23: {-20, 84},
	24: {-14, 32}, 25: {13, 24}, 26: {6, 13}, 27: {21, 5}, 28: {23, -2}, 29: {12, 4}, 30: {17, 17}, 31: {-23, 17},
	32: {-27, 13}, 33: {-2, 9}, 34: {-5, -3}, 35: {12, -7}, 36: {17, -7}, 37: {6, -8}, 38: {10, 3}, 39: {-25, -1},
	40: {-26, 4}, 41: {-4, 7}, 42: {-4, -6}, 43: {-10, 1}, 44: {3, 0}, 45: {3, -5}, 46: {33, -1}, 47: {-12, -8},
	48: {-35, 13}, 49: {-1, 8}, 50: {-20, 8}, 51: {-23, 10}, 52: {-15, 13}, 53: {24, 0}, 54: {38, 2}, 55: {-22, -7},
	56: {0, 0}, 57: {0, 0}, 58: {0, 0}, 59: {0, 0}, 60: {0, 0}, 61: {0, 0}, 62: {0, 0}, 63: {0, 0},
}

var knightPSQT = [square.N][2]Eval{
	0: {-167, -58}, 1: {-89, -38}, 2: {-34, -13}, 3: {-49, -28}, 4: {61, -31}, 5: {-97, -27}, 6: {-15, -63}, 7: {-107, -99},
	8: {-73, -25}, 9: {-41, -8}, 10: {72, -25}, 11: {36, -2}, 12: {23, -9}, 13: {62, -25}, 14: {7, -24}, 15: {-17, -52},
	16: {-47, -24}, 17: {60, -20}, 18: {37, 10}, 19: {65, 9}, 20: {84, -1}, 21: {129, -9}, 22: {73, -19}, 23: {44, -41},
	24: {-9, -17}, 25: {17, -1}, 26: {19, 12}, 27: {53, 10}, 28: {37, 13}, 29: {69, 14}, 30: {18, 1}, 31: {22, -8},
	32: {-13, -18}, 33: {4, -6}, 34: {16, 16}, 35: {13, 25}, 36: {28, 16}, 37: {19, 17}, 38: {21, 4}, 39: {-8, -18},
	40: {-23, -23}, 41: {-9, -3}, 42: {12, -1}, 43: {10, 15}, 44: {19, 10}, 45: {17, -3}, 46: {25, -20}, 47: {-16, -22},
	48: {-29, -42}, 49: {-53, -20}, 50: {-12, -10}, 51: {-3, -5}, 52: {-1, -2}, 53: {18, -20}, 54: {-14, -23}, 55: {-19, -44},
	56: {-105, -29}, 57: {-21, -51}, 58: {-58, -23}, 59: {-33, -15}, 60: {-17, -22}, 61: {-28, -18}, 62: {-19, -50}, 63: {-23, -64},
}

var bishopPSQT = [square.N][2]Eval{
	0: {-29, -14}, 1: {4, -21}, 2: {-82, -11}, 3: {-37, -8}, 4: {-25, -7}, 5: {-42, -9}, 6: {7, -17}, 7: {-8, -24},
	8: {-26, -8}, 9: {16, -4}, 10: {-18, 7}, 11: {-13, -12}, 12: {30, -3}, 13: {59, -13}, 14: {18, -4}, 15: {-47, -14},
	16: {-16, 2}, 17: {37, -8}, 18: {43, 0}, 19: {40, -1}, 20: {35, -2}, 21: {50, 6}, 22: {37, 0}, 23: {-2, 4},
	24: {-4, -3}, 25: {5, 9}, 26: {19, 12}, 27: {50, 9}, 28: {37, 14}, 29: {37, 10}, 30: {7, 3}, 31: {-2, 2},
	32: {-6, -6}, 33: {13, 3}, 34: {13, 13}, 35: {26, 19}, 36: {34, 7}, 37: {12, 10}, 38: {10, -3}, 39: {4, -9},
	40: {0, -12}, 41: {15, -3}, 42: {15, 8}, 43: {15, 10}, 44: {14, 13}, 45: {27, 3}, 46: {18, -7}, 47: {10, -15},
	48: {4, -14}, 49: {15, -18}, 50: {16, -7}, 51: {0, -1}, 52: {7, 4}, 53: {21, -9}, 54: {33, -15}, 55: {1, -27},
	56: {-33, -23}, 57: {-3, -9}, 58: {-14, -23}, 59: {-21, -5}, 60: {-13, -9}, 61: {-12, -16}, 62: {-39, -5}, 63: {-21, -17},
}

var rookPSQT = [square.N][2]Eval{
	0: {32, 13}, 1: {42, 10}, 2: {32, 18}, 3: {51, 15}, 4: {63, 12}, 5: {9, 12}, 6: {31, 8}, 7: {43, 5},
	8: {27, 11}, 9: {32, 13}, 10: {58, 13}, 11: {62, 11}, 12: {80, -3}, 13: {67, 3}, 14: {26, 8}, 15: {44, 3},
	16: {-5, 7}, 17: {19, 7}, 18: {26, 7}, 19: {36, 5}, 20: {17, 4}, 21: {45, -3}, 22: {61, -5}, 23: {16, -3},
	24: {-24, 4}, 25: {-11, 3}, 26: {7, 13}, 27: {26, 1}, 28: {24, 2}, 29: {35, 1}, 30: {-8, -1}, 31: {-20, 2},
	32: {-36, 3}, 33: {-26, 5}, 34: {-12, 8}, 35: {-1, 4}, 36: {9, -5}, 37: {-7, -6}, 38: {6, -8}, 39: {-23, -11},
	40: {-45, -4}, 41: {-25, 0}, 42: {-16, -5}, 43: {-17, -1}, 44: {3, -7}, 45: {0, -12}, 46: {-5, -8}, 47: {-33, -16},
	48: {-44, -6}, 49: {-16, -6}, 50: {-20, 0}, 51: {-9, 2}, 52: {-1, -9}, 53: {11, -9}, 54: {-6, -11}, 55: {-71, -3},
	56: {-19, -9}, 57: {-13, 2}, 58: {1, 3}, 59: {17, -1}, 60: {16, -5}, 61: {7, -13}, 62: {-37, 4}, 63: {-26, -20},
}

var queenPSQT = [square.N][2]Eval{
	0: {-28, -9}, 1: {0, 22}, 2: {29, 22}, 3: {12, 27}, 4: {59, 27}, 5: {44, 19}, 6: {43, 10}, 7: {45, 20},
	8: {-24, -17}, 9: {-39, 20}, 10: {-5, 32}, 11: {1, 41}, 12: {-16, 58}, 13: {57, 25}, 14: {28, 30}, 15: {54, 0},
	16: {-13, -20}, 17: {-17, 6}, 18: {7, 9}, 19: {8, 49}, 20: {29, 47}, 21: {56, 35}, 22: {47, 19}, 23: {57, 9},
	24: {-27, 3}, 25: {-27, 22}, 26: {-16, 24}, 27: {-16, 45}, 28: {-1, 57}, 29: {17, 40}, 30: {-2, 57}, 31: {1, 36},
	32: {-9, -18}, 33: {-26, 28}, 34: {-9, 19}, 35: {-10, 47}, 36: {-2, 31}, 37: {-4, 34}, 38: {3, 39}, 39: {-3, 23},
	40: {-14, -16}, 41: {2, -27}, 42: {-11, 15}, 43: {-2, 6}, 44: {-5, 9}, 45: {2, 17}, 46: {14, 10}, 47: {5, 5},
	48: {-35, -22}, 49: {-8, -23}, 50: {11, -30}, 51: {2, -16}, 52: {8, -16}, 53: {15, -23}, 54: {-3, -36}, 55: {1, -32},
	56: {-1, -33}, 57: {-18, -28}, 58: {-9, -22}, 59: {10, -43}, 60: {-15, -5}, 61: {-25, -32}, 62: {-31, -20}, 63: {-50, -41},
}

var kingPSQT = [square.N][2]Eval{
	0: {-65, -74}, 1: {23, -35}, 2: {16, -18}, 3: {-15, -18}, 4: {-56, -11}, 5: {-34, 15}, 6: {2, 4}, 7: {13, -17},
	8: {29, -12}, 9: {-1, 17}, 10: {-20, 14}, 11: {-7, 17}, 12: {-8, 17}, 13: {-4, 38}, 14: {-38, 23}, 15: {-29, 11},
	16: {-9, 10}, 17: {24, 17}, 18: {2, 23}, 19: {-16, 15}, 20: {-20, 20}, 21: {6, 45}, 22: {22, 44}, 23: {-22, 13},
	24: {-17, -8}, 25: {-20, 22}, 26: {-12, 24}, 27: {-27, 27}, 28: {-30, 26}, 29: {-25, 33}, 30: {-14, 26}, 31: {-36, 3},
	32: {-49, -18}, 33: {-1, -4}, 34: {-27, 21}, 35: {-39, 24}, 36: {-46, 27}, 37: {-44, 23}, 38: {-33, 9}, 39: {-51, -11},
	40: {-14, -19}, 41: {-14, -3}, 42: {-22, 11}, 43: {-46, 21}, 44: {-44, 23}, 45: {-30, 16}, 46: {-15, 7}, 47: {-27, -9},
	48: {1, -27}, 49: {7, -11}, 50: {-8, 4}, 51: {-64, 13}, 52: {-43, 14}, 53: {-16, 4}, 54: {9, -5}, 55: {8, -17},
	56: {-15, -53}, 57: {36, -34}, 58: {12, -21}, 59: {-54, -11}, 60: {8, -28}, 61: {-28, -14}, 62: {24, -24}, 63: {14, -43},
}

var psqt = [piece.NType][square.N][2]Eval{
	piece.Pawn:   pawnPSQT,
	piece.Knight: knightPSQT,
	piece.Bishop: bishopPSQT,
	piece.Rook:   rookPSQT,
	piece.Queen:  queenPSQT,
	piece.King:   kingPSQT,
}

// PSQT returns the tapered piece-square bonus for piece type t, color c,
// standing on square s.
func PSQT(t piece.Type, c piece.Color, s square.Square) Score {
	if c == piece.Black {
		s ^= 56 // mirror across the horizontal
	}
	entry := psqt[t][s]
	return S(entry[0], entry[1])
}
