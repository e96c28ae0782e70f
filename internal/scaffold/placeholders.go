package scaffold

// Written instead of the homepage when the user opts out of it.
const (
	placeholderApp = `export default function App() {
  return (
    <div className="min-h-dvh bg-base-100 text-base-content flex items-center justify-center">
      <h1 className="text-2xl font-bold">Your mass of pixels starts here.</h1>
    </div>
  )
}
`

	placeholderNotFound = `import { Link } from 'react-router-dom'

export function NotFoundPage() {
  return (
    <div className="min-h-dvh bg-base-100 text-base-content flex items-center justify-center px-6">
      <div className="text-center max-w-md">
        <h1 className="text-6xl font-bold mb-4">404</h1>
        <p className="text-xl text-base-content/70 mb-8">
          This page doesn't exist.
        </p>
        <Link to="/" className="btn btn-primary">
          Back to home
        </Link>
      </div>
    </div>
  )
}
`
)
