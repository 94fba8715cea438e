// Package web adapts rop outcomes to gin responses. It holds no policy of
// its own: callers decide how a failure maps to an HTTP status through a
// StatusMapper, usually built with ByCode from an error code table.
package web
