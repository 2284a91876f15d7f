// Package grove is a small GameObject/Component object model for [Ebitengine].
//
// A [Scene] owns [GameObject]s. Each GameObject has a name, a tag, a
// [Transform], and an ordered list of components. Components are plain
// structs that embed [ComponentBase]; behaviours embed [BehaviourBase] and
// can be switched off. They opt into lifecycle calls by implementing
// [Awaker], [Starter], [Updater], [Renderer], and [Destroyer].
//
// # Quick start
//
//	type Mover struct {
//		grove.BehaviourBase
//		Speed float64
//	}
//
//	func (m *Mover) Update() {
//		m.Transform().Translate(grove.VectorRight.Scaled(m.Speed))
//	}
//
//	scene := grove.NewScene("level")
//	scene.SetSetupFunc(func(s *grove.Scene) {
//		player := s.CreateGameObject("Player")
//		grove.AddComponent[Mover](player).Speed = 2
//	})
//	grove.Run(scene, grove.DefaultRunConfig())
//
// [Step] drives a scene without a window, which is what tests and servers use.
//
// # Frame order
//
// [Scene.Update] updates objects in creation order. Each object updates its
// enabled behaviours, then its components, in attachment order. Objects
// created during the pass are first updated on the next frame. Objects passed
// to [Destroy] stay in the scene until the pass completes and are then
// destroyed together with their descendants.
//
// # Hierarchy
//
// Transforms form a tree through [Transform.SetParent]. Translate, Rotate,
// and RotateAround apply the same delta to every descendant; there is no
// separate local and world space.
//
// # Instantiation
//
// [Instantiate] deep-copies an object, its children, and its components.
// Components may implement [Cloner] to control the copy and [Relinker] to
// repoint references at the new copies.
//
// Lifecycle events can be forwarded to an ECS through [EventSink]; see the
// ecs subpackage for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package grove
