// Package evalexpr implements an arithmetic expression evaluator with a
// persistent symbol table.
//
// Expressions use ordinary algebraic syntax: numbers, named variables,
// built-in functions like sqrt(x) and if(cond, a, b), parentheses, and the
// operators ^ * / + - < <= > >= == != && || and the comma. Comparisons and
// the logical operators yield 1 for true and 0 for false; && and || always
// evaluate both operands. Assignment with = (or +=, -=, *=, /=) stores into
// the evaluator's symbol table and persists to later Evaluate calls, so
// "a=1, b=a+1" initializes two variables and yields 2.
//
// Expressions are evaluated in a single pass as they are parsed; there is no
// intermediate syntax tree.
package evalexpr
