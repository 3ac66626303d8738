// Package calibration recovers calibration values from amended document
// lines: the first and last digit of each line form a two-digit number.
//
// Part 1 reads literal digits only. Part 2 also accepts the spelled names
// "one" through "nine"; names may overlap ("eightwo" reads 8 then 2).
//
// Complexity: O(L) per line of length L.
package calibration
