// Package core contains pipeline plumbing utilities: channel helpers, worker
// and process configuration via context, and the locomotive that drives
// stages. It does not define result semantics; it provides the scaffolding
// for packages like mass and lite to run combinators with controlled
// concurrency.
package core
