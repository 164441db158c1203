// Package calc implements a calculator for arithmetic, statistics, and small
// sets of numbers.
//
// Expressions use the usual infix operators + - * / % and ^, a postfix
// factorial "!", unary signs, function calls like "sqrt(2)", and set literals
// like "[1, 2, 3]". "-2^2" is "-(2^2)", while "2^3^2" is "(2^3)^2".
//
// Evaluation has three stages. A Lexer turns source text into Tokens, a
// Parser builds a tree of Nodes from them, and an Executor reduces the tree
// to a Value. Display renders a tree in LaTeX-like notation, e.g.
// "\frac{1}{2}" for "1/2". EvalString runs all three stages at once.
package calc
