package cssast

import "cssc/internal/csstoken"

// Token is the AST's decoded token type; see csstoken.ValueToken for the
// rationale behind keeping its definition in the token package.
type Token = csstoken.ValueToken
